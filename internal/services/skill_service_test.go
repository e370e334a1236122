package services

import (
	"context"
	"testing"

	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCreateWithoutOrderAppends(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	first, err := svc.Create(context.Background(), "Go", nil)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), "SQL", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
}

func TestSkillCreateHonorsExplicitOrder(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	five := 5
	skill, err := svc.Create(context.Background(), "Go", &five)
	require.NoError(t, err)
	assert.Equal(t, 5, skill.Order)
}

func TestSkillCreateRequiresName(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	_, err := svc.Create(context.Background(), "", nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSkillListSortedRegardlessOfInsertionSequence(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	two, zero, one := 2, 0, 1
	_, err := svc.Create(context.Background(), "late", &two)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "early", &zero)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "middle", &one)
	require.NoError(t, err)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "early", rows[0].Name)
	assert.Equal(t, "middle", rows[1].Name)
	assert.Equal(t, "late", rows[2].Name)
}

func TestSkillReorderReversesCollection(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	var ids []string
	for _, name := range []string{"Go", "SQL", "HTTP", "Docker"} {
		s, err := svc.Create(context.Background(), name, nil)
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	reversed := make([]string, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		reversed = append(reversed, ids[i])
	}
	require.NoError(t, svc.Reorder(context.Background(), reversed))

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Docker", rows[0].Name)
	assert.Equal(t, "Go", rows[3].Name)
	for i, row := range rows {
		assert.Equal(t, i, row.Order)
	}
}

func TestSkillReorderRejectsEmptyList(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	err := svc.Reorder(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestSkillDeleteTwiceSucceeds(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	s, err := svc.Create(context.Background(), "Go", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), s.ID))
	require.NoError(t, svc.Delete(context.Background(), s.ID))

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSkillUpdateUnknownIDIsNotFound(t *testing.T) {
	svc := NewSkillService(pgrepo.NewSkillRepo(newServiceDB(t)))

	name := "Go"
	_, err := svc.Update(context.Background(), "missing", &name, nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
