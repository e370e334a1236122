package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	First(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, p *models.Profile) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) First(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

// Upsert keeps the singleton invariant: update the existing row when one
// exists, otherwise create it, inside one transaction.
func (r *profileRepo) Upsert(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		err := tx.Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(p).Error
		case err != nil:
			return err
		default:
			p.ID = existing.ID
			return tx.Save(p).Error
		}
	})
}
