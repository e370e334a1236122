package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type AboutHandler struct {
	svc services.AboutService
}

func NewAboutHandler(svc services.AboutService) *AboutHandler {
	return &AboutHandler{svc: svc}
}

func (h *AboutHandler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type SaveAboutRequest struct {
	Content string `json:"content"`
}

func (h *AboutHandler) Save(c *gin.Context) {
	var req SaveAboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AboutHandler.Save", "invalid request body", err))
		return
	}

	a, err := h.svc.Upsert(c.Request.Context(), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
