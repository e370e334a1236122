package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

// writeError maps the AppError taxonomy to a status code and a safe
// message. Anything outside the taxonomy becomes an opaque 500; the full
// error stays in the server log via gin's error list.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func writeSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
