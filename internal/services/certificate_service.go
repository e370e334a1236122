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

type CertificateInput struct {
	Title       string
	Description string
	ImageURL    string
	IssueDate   string
	Issuer      string
	Order       *int
}

type CertificatePatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	IssueDate   *string
	Issuer      *string
	Order       *int
}

type CertificateService interface {
	List(ctx context.Context) ([]models.Certificate, error)
	Create(ctx context.Context, in CertificateInput) (*models.Certificate, error)
	Update(ctx context.Context, id string, patch CertificatePatch) (*models.Certificate, error)
	Delete(ctx context.Context, id string) error
}

type certificateService struct {
	certificates pgrepo.CertificateRepository
}

func NewCertificateService(certificates pgrepo.CertificateRepository) CertificateService {
	return &certificateService{certificates: certificates}
}

func (s *certificateService) List(ctx context.Context) ([]models.Certificate, error) {
	const op = "CertificateService.List"

	rows, err := s.certificates.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list certificates", err)
	}
	return rows, nil
}

func (s *certificateService) Create(ctx context.Context, in CertificateInput) (*models.Certificate, error) {
	const op = "CertificateService.Create"

	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	if in.IssueDate == "" {
		missing = append(missing, "issueDate")
	}
	if in.Issuer == "" {
		missing = append(missing, "issuer")
	}
	if len(missing) > 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"missing required fields: "+strings.Join(missing, ", "), nil)
	}

	now := time.Now().UTC()
	cert := &models.Certificate{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IssueDate:   in.IssueDate,
		Issuer:      in.Issuer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	assign := in.Order == nil
	if in.Order != nil {
		cert.Order = *in.Order
	}

	if err := s.certificates.Insert(ctx, cert, assign); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create certificate", err)
	}
	return cert, nil
}

func (s *certificateService) Update(ctx context.Context, id string, patch CertificatePatch) (*models.Certificate, error) {
	const op = "CertificateService.Update"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	cert, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "certificate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load certificate", err)
	}

	if patch.Title != nil {
		cert.Title = *patch.Title
	}
	if patch.Description != nil {
		cert.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		cert.ImageURL = *patch.ImageURL
	}
	if patch.IssueDate != nil {
		cert.IssueDate = *patch.IssueDate
	}
	if patch.Issuer != nil {
		cert.Issuer = *patch.Issuer
	}
	if patch.Order != nil {
		cert.Order = *patch.Order
	}
	cert.UpdatedAt = time.Now().UTC()

	if err := s.certificates.Save(ctx, cert); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update certificate", err)
	}
	return cert, nil
}

func (s *certificateService) Delete(ctx context.Context, id string) error {
	const op = "CertificateService.Delete"

	if id == "" {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.certificates.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete certificate", err)
	}
	return nil
}
