package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
)

type ImageHandler struct {
	svc services.ImageService
}

func NewImageHandler(svc services.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// Serve streams the stored binary. Images are immutable once uploaded, so
// clients may cache them for a year.
func (h *ImageHandler) Serve(c *gin.Context) {
	img, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, img.MimeType, img.Data)
}
