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

// ProjectInput carries a create submission. Tags arrive as the raw
// comma-separated string the admin typed; the service derives the list.
type ProjectInput struct {
	Title       string
	Description string
	Tags        string
	ImageURL    string
	Link        string
	Order       *int
}

// ProjectPatch carries a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title       *string
	Description *string
	Tags        *string
	ImageURL    *string
	Link        *string
	Order       *int
}

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, in ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

type projectService struct {
	projects pgrepo.ProjectRepository
}

func NewProjectService(projects pgrepo.ProjectRepository) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"

	rows, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}
	return rows, nil
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	const op = "ProjectService.Create"

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"missing required fields: "+strings.Join(missing, ", "), nil)
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Tags:        models.ParseTags(in.Tags),
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	assign := in.Order == nil
	if in.Order != nil {
		project.Order = *in.Order
	}

	if err := s.projects.Insert(ctx, project, assign); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create project", err)
	}
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch ProjectPatch) (*models.Project, error) {
	const op = "ProjectService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load project", err)
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "missing required fields: title", nil)
		}
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Tags != nil {
		project.Tags = models.ParseTags(*patch.Tags)
	}
	if patch.ImageURL != nil {
		project.ImageURL = *patch.ImageURL
	}
	if patch.Link != nil {
		project.Link = *patch.Link
	}
	if patch.Order != nil {
		project.Order = *patch.Order
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update project", err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	const op = "ProjectService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}
	return nil
}

func (s *projectService) Reorder(ctx context.Context, ids []string) error {
	const op = "ProjectService.Reorder"

	if len(ids) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "projectIds must be a non-empty array", nil)
	}
	if err := s.projects.Reorder(ctx, ids); err != nil {
		if errors.Is(err, pgrepo.ErrOrderMismatch) {
			return utils.E(utils.CodeInvalidArgument, op, "projectIds must contain every project id exactly once", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to reorder projects", err)
	}
	return nil
}
