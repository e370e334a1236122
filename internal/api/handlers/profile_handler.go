package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
	"gorm.io/datatypes"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type SaveProfileRequest struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Status      *string `json:"status"`

	EduMajor          *string `json:"eduMajor"`
	EduUniversity     *string `json:"eduUniversity"`
	EduGraduationYear *int    `json:"eduGraduationYear"`

	ProfileImage       *string `json:"profileImage"`
	BackgroundGradient *string `json:"backgroundGradient"`

	Links *json.RawMessage `json:"links"`
}

// Save applies a partial update over the current (or default) profile and
// upserts the singleton row.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Save", "invalid request body", err))
		return
	}

	existing, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Location != nil {
		existing.Location = *req.Location
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.EduMajor != nil {
		existing.EduMajor = *req.EduMajor
	}
	if req.EduUniversity != nil {
		existing.EduUniversity = *req.EduUniversity
	}
	if req.EduGraduationYear != nil {
		existing.EduGraduationYear = *req.EduGraduationYear
	}
	if req.ProfileImage != nil {
		existing.ProfileImage = *req.ProfileImage
	}
	if req.BackgroundGradient != nil {
		existing.BackgroundGradient = *req.BackgroundGradient
	}
	if req.Links != nil {
		existing.Links = datatypes.JSON(*req.Links)
	}

	saved, err := h.svc.Upsert(c.Request.Context(), existing)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
