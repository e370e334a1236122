package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, p *models.Project, assignOrder bool) error
	Save(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *projectRepo) Insert(ctx context.Context, p *models.Project, assignOrder bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if assignOrder {
			n, err := nextOrder(tx, &models.Project{})
			if err != nil {
				return err
			}
			p.Order = n
		}
		return tx.Create(p).Error
	})
}

func (r *projectRepo) Save(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Project{}, "id = ?", id).Error
}

func (r *projectRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderAll(ctx, r.db, &models.Project{}, ids)
}
