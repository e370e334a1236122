package services

import (
	"context"
	"testing"

	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAboutGetReturnsDefaultWhenEmpty(t *testing.T) {
	svc := NewAboutService(pgrepo.NewAboutRepo(newServiceDB(t)))

	a, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, a.ID)
	assert.NotEmpty(t, a.Content)
}

func TestAboutUpsertKeepsSingleRow(t *testing.T) {
	svc := NewAboutService(pgrepo.NewAboutRepo(newServiceDB(t)))

	first, err := svc.Upsert(context.Background(), "first version")
	require.NoError(t, err)
	second, err := svc.Upsert(context.Background(), "second version")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second version", got.Content)
}

func TestAboutUpsertRejectsEmptyContent(t *testing.T) {
	svc := NewAboutService(pgrepo.NewAboutRepo(newServiceDB(t)))

	_, err := svc.Upsert(context.Background(), "good content")
	require.NoError(t, err)

	_, err = svc.Upsert(context.Background(), "")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "good content", got.Content)
}

func TestProfileGetReturnsDefaultWhenEmpty(t *testing.T) {
	svc := NewProfileService(pgrepo.NewProfileRepo(newServiceDB(t)))

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p.ID)
	assert.NotEmpty(t, p.Title)
}

func TestProfileUpsertCreatesThenUpdates(t *testing.T) {
	svc := NewProfileService(pgrepo.NewProfileRepo(newServiceDB(t)))

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	p.Name = "Nabil"
	saved, err := svc.Upsert(context.Background(), p)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	saved.Location = "Indonesia"
	again, err := svc.Upsert(context.Background(), saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nabil", got.Name)
	assert.Equal(t, "Indonesia", got.Location)
}
