package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func seedSkills(t *testing.T, repo SkillRepository, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		s := &models.Skill{ID: uuid.NewString(), Name: name}
		require.NoError(t, repo.Insert(context.Background(), s, true))
		ids = append(ids, s.ID)
	}
	return ids
}

func TestInsertAssignsAppendOrder(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	seedSkills(t, repo, "Go", "SQL", "HTTP")

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.Order)
	}
	assert.Equal(t, "Go", rows[0].Name)
	assert.Equal(t, "HTTP", rows[2].Name)
}

func TestReorderAssignsContiguousPositions(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	ids := seedSkills(t, repo, "Go", "SQL", "HTTP")

	reversed := []string{ids[2], ids[1], ids[0]}
	require.NoError(t, repo.Reorder(context.Background(), reversed))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, reversed[i], row.ID)
		assert.Equal(t, i, row.Order)
	}
}

func TestReorderNormalizesSparseOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewSkillRepo(db)

	// Non-contiguous orders at rest are allowed; reorder must still end in 0..N-1.
	var ids []string
	for i, name := range []string{"a", "b", "c"} {
		s := &models.Skill{ID: uuid.NewString(), Name: name, Order: i * 10}
		require.NoError(t, repo.Insert(context.Background(), s, false))
		ids = append(ids, s.ID)
	}

	require.NoError(t, repo.Reorder(context.Background(), ids))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	for i, row := range rows {
		assert.Equal(t, i, row.Order)
	}
}

func TestReorderRejectsPartialIDSet(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	ids := seedSkills(t, repo, "Go", "SQL", "HTTP")

	err := repo.Reorder(context.Background(), ids[:2])
	require.ErrorIs(t, err, ErrOrderMismatch)

	// Nothing was applied.
	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	for i, row := range rows {
		assert.Equal(t, i, row.Order)
		assert.Equal(t, ids[i], row.ID)
	}
}

func TestReorderRejectsDuplicateIDs(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	ids := seedSkills(t, repo, "Go", "SQL", "HTTP")

	err := repo.Reorder(context.Background(), []string{ids[0], ids[0], ids[1]})
	require.ErrorIs(t, err, ErrOrderMismatch)
}

func TestReorderRejectsUnknownIDs(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	ids := seedSkills(t, repo, "Go", "SQL")

	err := repo.Reorder(context.Background(), []string{ids[0], uuid.NewString()})
	require.ErrorIs(t, err, ErrOrderMismatch)
}

func TestReorderManyItems(t *testing.T) {
	repo := NewProjectRepo(newTestDB(t))

	var ids []string
	for i := 0; i < 20; i++ {
		p := &models.Project{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("project %d", i),
			Description: "d",
		}
		require.NoError(t, repo.Insert(context.Background(), p, true))
		ids = append(ids, p.ID)
	}

	// Rotate by 7.
	rotated := append(append([]string{}, ids[7:]...), ids[:7]...)
	require.NoError(t, repo.Reorder(context.Background(), rotated))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 20)
	for i, row := range rows {
		assert.Equal(t, rotated[i], row.ID)
		assert.Equal(t, i, row.Order)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := NewSkillRepo(newTestDB(t))
	ids := seedSkills(t, repo, "Go", "SQL")

	require.NoError(t, repo.Delete(context.Background(), ids[0]))
	require.NoError(t, repo.Delete(context.Background(), ids[0]))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ids[1], rows[0].ID)
}
