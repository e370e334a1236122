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

type ImageService interface {
	Store(ctx context.Context, filename, mimeType string, data []byte) (*models.Image, error)
	Get(ctx context.Context, id string) (*models.Image, error)
}

type imageService struct {
	images pgrepo.ImageRepository
}

func NewImageService(images pgrepo.ImageRepository) ImageService {
	return &imageService{images: images}
}

func (s *imageService) Store(ctx context.Context, filename, mimeType string, data []byte) (*models.Image, error) {
	const op = "ImageService.Store"

	if len(data) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "image data is empty", nil)
	}
	if mimeType == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "mime type is required", nil)
	}

	img := &models.Image{
		ID:        uuid.NewString(),
		Filename:  filename,
		MimeType:  mimeType,
		Size:      int64(len(data)),
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.images.Insert(ctx, img); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to store image", err)
	}
	return img, nil
}

func (s *imageService) Get(ctx context.Context, id string) (*models.Image, error) {
	const op = "ImageService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	img, err := s.images.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "image not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load image", err)
	}
	return img, nil
}
