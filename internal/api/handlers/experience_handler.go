package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type CreateExperienceRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
	Order       *int   `json:"order"`
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Create", "invalid request body", err))
		return
	}

	exp, err := h.svc.Create(c.Request.Context(), services.ExperienceInput{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Date:        req.Date,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

type UpdateExperienceRequest struct {
	Title       *string `json:"title"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Update", "invalid request body", err))
		return
	}

	exp, err := h.svc.Update(c.Request.Context(), c.Param("id"), services.ExperiencePatch{
		Title:       req.Title,
		Location:    req.Location,
		Description: req.Description,
		Date:        req.Date,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c)
}

type ReorderExperiencesRequest struct {
	ExperienceIds []string `json:"experienceIds"`
}

func (h *ExperienceHandler) Reorder(c *gin.Context) {
	var req ReorderExperiencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ExperienceHandler.Reorder", "experienceIds must be an array", err))
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), req.ExperienceIds); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c)
}
