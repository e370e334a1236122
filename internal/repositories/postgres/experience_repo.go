package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	Insert(ctx context.Context, e *models.Experience, assignOrder bool) error
	Save(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type experienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	var rows []models.Experience
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*models.Experience, error) {
	var e models.Experience
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *experienceRepo) Insert(ctx context.Context, e *models.Experience, assignOrder bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if assignOrder {
			n, err := nextOrder(tx, &models.Experience{})
			if err != nil {
				return err
			}
			e.Order = n
		}
		return tx.Create(e).Error
	})
}

func (r *experienceRepo) Save(ctx context.Context, e *models.Experience) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Experience{}, "id = ?", id).Error
}

func (r *experienceRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderAll(ctx, r.db, &models.Experience{}, ids)
}
