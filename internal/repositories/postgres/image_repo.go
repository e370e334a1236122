package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Insert(ctx context.Context, img *models.Image) error
	GetByID(ctx context.Context, id string) (*models.Image, error)
}

type imageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) Insert(ctx context.Context, img *models.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imageRepo) GetByID(ctx context.Context, id string) (*models.Image, error) {
	var img models.Image
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &img, err
}
