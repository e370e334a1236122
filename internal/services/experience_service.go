package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nabilath/portfolio-api/internal/models"
	pgrepo "github.com/nabilath/portfolio-api/internal/repositories/postgres"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type ExperienceInput struct {
	Title       string
	Location    string
	Description string
	Date        string
	Icon        string
	Order       *int
}

type ExperiencePatch struct {
	Title       *string
	Location    *string
	Description *string
	Date        *string
	Icon        *string
	Order       *int
}

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, in ExperienceInput) (*models.Experience, error)
	Update(ctx context.Context, id string, patch ExperiencePatch) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type experienceService struct {
	experiences pgrepo.ExperienceRepository
}

func NewExperienceService(experiences pgrepo.ExperienceRepository) ExperienceService {
	return &experienceService{experiences: experiences}
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	const op = "ExperienceService.List"

	rows, err := s.experiences.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list experiences", err)
	}
	return rows, nil
}

func (s *experienceService) Create(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	const op = "ExperienceService.Create"

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Location == "" {
		missing = append(missing, "location")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"missing required fields: "+strings.Join(missing, ", "), nil)
	}

	icon := in.Icon
	if icon == "" {
		icon = models.DefaultExperienceIcon
	}

	now := time.Now().UTC()
	exp := &models.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Location:    in.Location,
		Description: in.Description,
		Date:        in.Date,
		Icon:        icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	assign := in.Order == nil
	if in.Order != nil {
		exp.Order = *in.Order
	}

	if err := s.experiences.Insert(ctx, exp, assign); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create experience", err)
	}
	return exp, nil
}

func (s *experienceService) Update(ctx context.Context, id string, patch ExperiencePatch) (*models.Experience, error) {
	const op = "ExperienceService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	exp, err := s.experiences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "experience not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load experience", err)
	}

	if patch.Title != nil {
		exp.Title = *patch.Title
	}
	if patch.Location != nil {
		exp.Location = *patch.Location
	}
	if patch.Description != nil {
		exp.Description = *patch.Description
	}
	if patch.Date != nil {
		exp.Date = *patch.Date
	}
	if patch.Icon != nil && *patch.Icon != "" {
		exp.Icon = *patch.Icon
	}
	if patch.Order != nil {
		exp.Order = *patch.Order
	}
	exp.UpdatedAt = time.Now().UTC()

	if err := s.experiences.Save(ctx, exp); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}
	return exp, nil
}

func (s *experienceService) Delete(ctx context.Context, id string) error {
	const op = "ExperienceService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.experiences.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete experience", err)
	}
	return nil
}

func (s *experienceService) Reorder(ctx context.Context, ids []string) error {
	const op = "ExperienceService.Reorder"

	if len(ids) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "experienceIds must be a non-empty array", nil)
	}
	if err := s.experiences.Reorder(ctx, ids); err != nil {
		if errors.Is(err, pgrepo.ErrOrderMismatch) {
			return utils.E(utils.CodeInvalidArgument, op, "experienceIds must contain every experience id exactly once", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to reorder experiences", err)
	}
	return nil
}
