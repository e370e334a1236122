package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nabilath/portfolio-api/internal/api/middleware"
	"github.com/nabilath/portfolio-api/internal/services"
	"github.com/nabilath/portfolio-api/internal/utils"
)

type AuthHandler struct {
	svc          services.AuthService
	secureCookie bool
}

func NewAuthHandler(svc services.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookie: secureCookie}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	token, ttl, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookie, token, int(ttl.Seconds()), "/", "", h.secureCookie, true)
	writeSuccess(c)
}

// Logout only clears the cookie. The token itself stays valid until its
// expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", h.secureCookie, true)
	writeSuccess(c)
}
