package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type CertificateHandler struct {
	svc services.CertificateService
}

func NewCertificateHandler(svc services.CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

func (h *CertificateHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type CreateCertificateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IssueDate   string `json:"issueDate"`
	Issuer      string `json:"issuer"`
	Order       *int   `json:"order"`
}

func (h *CertificateHandler) Create(c *gin.Context) {
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CertificateHandler.Create", "invalid request body", err))
		return
	}

	cert, err := h.svc.Create(c.Request.Context(), services.CertificateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IssueDate:   req.IssueDate,
		Issuer:      req.Issuer,
		Order:       req.Order,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

type UpdateCertificateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	IssueDate   *string `json:"issueDate"`
	Issuer      *string `json:"issuer"`
	Order       *int    `json:"order"`
}

func (h *CertificateHandler) Update(c *gin.Context) {
	var req UpdateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CertificateHandler.Update", "invalid request body", err))
		return
	}

	cert, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.CertificatePatch{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IssueDate:   req.IssueDate,
		Issuer:      req.Issuer,
		Order:       req.Order,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificateHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c)
}
