package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nabilath/portfolio-api/internal/models"
	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type AboutService interface {
	Get(ctx context.Context) (*models.About, error)
	Upsert(ctx context.Context, content string) (*models.About, error)
}

type aboutService struct {
	about pgrepo.AboutRepository
}

func NewAboutService(about pgrepo.AboutRepository) AboutService {
	return &aboutService{about: about}
}

func (s *aboutService) Get(ctx context.Context) (*models.About, error) {
	const op = "AboutService.Get"

	a, err := s.about.First(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return models.DefaultAbout(), nil
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get about", err)
	}
	return a, nil
}

func (s *aboutService) Upsert(ctx context.Context, content string) (*models.About, error) {
	const op = "AboutService.Upsert"

	if content == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "missing required fields: content", nil)
	}

	a := &models.About{
		ID:        uuid.NewString(),
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.about.Upsert(ctx, a); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert about", err)
	}
	return a, nil
}
