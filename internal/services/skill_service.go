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

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, name string, order *int) (*models.Skill, error)
	Update(ctx context.Context, id string, name *string, order *int) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type skillService struct {
	skills pgrepo.SkillRepository
}

func NewSkillService(skills pgrepo.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	const op = "SkillService.List"

	rows, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}
	return rows, nil
}

func (s *skillService) Create(ctx context.Context, name string, order *int) (*models.Skill, error) {
	const op = "SkillService.Create"

	if name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "missing required fields: name", nil)
	}

	now := time.Now().UTC()
	skill := &models.Skill{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	assign := order == nil
	if order != nil {
		skill.Order = *order
	}

	if err := s.skills.Insert(ctx, skill, assign); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id string, name *string, order *int) (*models.Skill, error) {
	const op = "SkillService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if name != nil && *name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "missing required fields: name", nil)
	}

	skill, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load skill", err)
	}

	if name != nil {
		skill.Name = *name
	}
	if order != nil {
		skill.Order = *order
	}
	skill.UpdatedAt = time.Now().UTC()

	if err := s.skills.Save(ctx, skill); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update skill", err)
	}
	return skill, nil
}

// Delete is idempotent: removing an id that no longer exists still reports
// success. The same policy holds for every collection type.
func (s *skillService) Delete(ctx context.Context, id string) error {
	const op = "SkillService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.skills.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}
	return nil
}

func (s *skillService) Reorder(ctx context.Context, ids []string) error {
	const op = "SkillService.Reorder"

	if len(ids) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "skillIds must be a non-empty array", nil)
	}
	if err := s.skills.Reorder(ctx, ids); err != nil {
		if errors.Is(err, pgrepo.ErrOrderMismatch) {
			return utils.E(utils.CodeInvalidArgument, op, "skillIds must contain every skill id exactly once", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to reorder skills", err)
	}
	return nil
}
