package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

func (h *SkillHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type CreateSkillRequest struct {
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Create", "invalid request body", err))
		return
	}

	skill, err := h.svc.Create(c.Request.Context(), req.Name, req.Order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

type UpdateSkillRequest struct {
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Update", "invalid request body", err))
		return
	}

	skill, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c)
}

type ReorderSkillsRequest struct {
	SkillIds []string `json:"skillIds"`
}

func (h *SkillHandler) Reorder(c *gin.Context) {
	var req ReorderSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Reorder", "skillIds must be an array", err))
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), req.SkillIds); err != nil {
		writeError(c, err)
		return
	}
	writeSuccess(c)
}
