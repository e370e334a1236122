package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/nabilath/portfolio-api/internal/models"
	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, pgrepo.Migrate(db))
	return db
}

func TestProjectTagsRoundTrip(t *testing.T) {
	svc := NewProjectService(pgrepo.NewProjectRepo(newServiceDB(t)))

	created, err := svc.Create(context.Background(), ProjectInput{
		Title:       "Portfolio",
		Description: "My site",
		Tags:        "a, b ,c",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TagList{"a", "b", "c"}, created.Tags)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.TagList{"a", "b", "c"}, rows[0].Tags)
}

func TestProjectTagsDropEmptySegments(t *testing.T) {
	assert.Equal(t, models.TagList{"go", "gin"}, models.ParseTags("go,, gin , "))
	assert.Empty(t, models.ParseTags("  ,  "))
	assert.Empty(t, models.ParseTags(""))
}

func TestProjectCreateListsMissingFields(t *testing.T) {
	svc := NewProjectService(pgrepo.NewProjectRepo(newServiceDB(t)))

	_, err := svc.Create(context.Background(), ProjectInput{})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	var ae *utils.AppError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Message, "title")
	assert.Contains(t, ae.Message, "description")
}

func TestProjectUpdateUnknownIDLeavesStoreUntouched(t *testing.T) {
	db := newServiceDB(t)
	svc := NewProjectService(pgrepo.NewProjectRepo(db))

	_, err := svc.Create(context.Background(), ProjectInput{Title: "one", Description: "d"})
	require.NoError(t, err)

	title := "ghost"
	_, err = svc.Update(context.Background(), uuid.NewString(), ProjectPatch{Title: &title})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "one", rows[0].Title)
}

func TestProjectUpdatePatchesOnlyGivenFields(t *testing.T) {
	svc := NewProjectService(pgrepo.NewProjectRepo(newServiceDB(t)))

	created, err := svc.Create(context.Background(), ProjectInput{
		Title:       "one",
		Description: "d",
		Tags:        "x,y",
		Link:        "https://example.com",
	})
	require.NoError(t, err)

	desc := "updated"
	updated, err := svc.Update(context.Background(), created.ID, ProjectPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "one", updated.Title)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, models.TagList{"x", "y"}, updated.Tags)
	assert.Equal(t, "https://example.com", updated.Link)
}

func TestProjectReorderMismatchIsValidationError(t *testing.T) {
	svc := NewProjectService(pgrepo.NewProjectRepo(newServiceDB(t)))

	a, err := svc.Create(context.Background(), ProjectInput{Title: "a", Description: "d"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ProjectInput{Title: "b", Description: "d"})
	require.NoError(t, err)

	err = svc.Reorder(context.Background(), []string{a.ID})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
