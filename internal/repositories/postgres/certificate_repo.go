package postgres

import (
	"context"
	"errors"

	"github.com/nabilath/portfolio-api/internal/models"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

// CertificateRepository has no Reorder: certificate positions are set only
// on create or update.
type CertificateRepository interface {
	List(ctx context.Context) ([]models.Certificate, error)
	GetByID(ctx context.Context, id string) (*models.Certificate, error)
	Insert(ctx context.Context, c *models.Certificate, assignOrder bool) error
	Save(ctx context.Context, c *models.Certificate) error
	Delete(ctx context.Context, id string) error
}

type certificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) CertificateRepository {
	return &certificateRepo{db: db}
}

func (r *certificateRepo) List(ctx context.Context) ([]models.Certificate, error) {
	var rows []models.Certificate
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *certificateRepo) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	var c models.Certificate
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *certificateRepo) Insert(ctx context.Context, c *models.Certificate, assignOrder bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if assignOrder {
			n, err := nextOrder(tx, &models.Certificate{})
			if err != nil {
				return err
			}
			c.Order = n
		}
		return tx.Create(c).Error
	})
}

func (r *certificateRepo) Save(ctx context.Context, c *models.Certificate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *certificateRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Certificate{}, "id = ?", id).Error
}
