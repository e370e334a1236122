package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type AboutRepository interface {
	First(ctx context.Context) (*models.About, error)
	Upsert(ctx context.Context, a *models.About) error
}

type aboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) AboutRepository {
	return &aboutRepo{db: db}
}

func (r *aboutRepo) First(ctx context.Context) (*models.About, error) {
	var a models.About
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *aboutRepo) Upsert(ctx context.Context, a *models.About) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.About
		err := tx.Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(a).Error
		case err != nil:
			return err
		default:
			a.ID = existing.ID
			return tx.Save(a).Error
		}
	})
}
