package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
)

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/gif":  {},
}

type UploadHandler struct {
	images   services.ImageService
	profiles services.ProfileService
	maxBytes int64
}

func NewUploadHandler(images services.ImageService, profiles services.ProfileService, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &UploadHandler{images: images, profiles: profiles, maxBytes: maxBytes}
}

// Upload stores a multipart image in the database and answers with the
// serving path. With updateProfile=true the profile's image URL is pointed
// at the new upload.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.Upload", "missing multipart field 'file'", err))
		return
	}

	if fh.Size <= 0 || fh.Size > h.maxBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.Upload", "file is empty or too large", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "UploadHandler.Upload", "failed to open upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "UploadHandler.Upload", "failed to read upload", err))
		return
	}
	if int64(len(data)) > h.maxBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.Upload", "file is too large", nil))
		return
	}

	// sniff the real content type; the client-declared one is not trusted
	ct := http.DetectContentType(data)
	if _, ok := allowedImageTypes[ct]; !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, "UploadHandler.Upload", "file must be a png, jpeg, webp, or gif image", nil))
		return
	}

	img, err := h.images.Store(c.Request.Context(), fh.Filename, ct, data)
	if err != nil {
		writeError(c, err)
		return
	}

	path := "/images/" + img.ID

	if c.PostForm("updateProfile") == "true" {
		profile, err := h.profiles.Get(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		profile.ProfileImage = path
		if _, err := h.profiles.Upsert(c.Request.Context(), profile); err != nil {
			writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upload successful",
		"path":    path,
		"id":      img.ID,
	})
}
