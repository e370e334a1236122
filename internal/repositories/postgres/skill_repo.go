package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type SkillRepository interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Insert(ctx context.Context, s *models.Skill, assignOrder bool) error
	Save(ctx context.Context, s *models.Skill) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type skillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) List(ctx context.Context) ([]models.Skill, error) {
	var rows []models.Skill
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	var s models.Skill
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &s, err
}

func (r *skillRepo) Insert(ctx context.Context, s *models.Skill, assignOrder bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if assignOrder {
			n, err := nextOrder(tx, &models.Skill{})
			if err != nil {
				return err
			}
			s.Order = n
		}
		return tx.Create(s).Error
	})
}

func (r *skillRepo) Save(ctx context.Context, s *models.Skill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Skill{}, "id = ?", id).Error
}

func (r *skillRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderAll(ctx, r.db, &models.Skill{}, ids)
}
