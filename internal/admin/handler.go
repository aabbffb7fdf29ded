package admin

import (
	"errors"
	"net/http"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	sessions *auth.SessionIssuer
	cookies  auth.CookieConfig
}

func NewHandler(service Service, sessions *auth.SessionIssuer, cookies auth.CookieConfig) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		cookies:  cookies,
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !api.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	if !h.startSession(c, a) {
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "Admin registered",
		Admin:   Summary{Email: a.Email, GymName: a.GymName},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req) {
		return
	}

	a, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	if !h.startSession(c, a) {
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login successful",
		Admin:   Summary{Email: a.Email, GymName: a.GymName},
	})
}

// Logout is reachable without a session so that a stale cookie can always
// be cleared.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.AdminCookieName); err == nil && token != "" {
		err := h.sessions.Revoke(c.Request.Context(), token, auth.KindAdmin)
		if err != nil && !errors.Is(err, auth.ErrInvalidToken) {
			logger.Warn("admin session revocation failed", "error", err.Error())
		}
	}

	auth.ClearSessionCookie(c, auth.KindAdmin, h.cookies)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
}

func (h *Handler) Me(c *gin.Context) {
	scope, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), scope.AdminID)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) CheckAuth(c *gin.Context) {
	scope, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, CheckAuthResponse{
		Message: "Authenticated",
		AdminID: scope.AdminID,
		GymName: scope.GymName,
	})
}

func (h *Handler) Dashboard(c *gin.Context) {
	scope, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	d, err := h.service.Dashboard(c.Request.Context(), scope)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) startSession(c *gin.Context, a *Admin) bool {
	token, _, err := h.sessions.Issue(a.ID, auth.KindAdmin)
	if err != nil {
		api.Fail(c, err)
		return false
	}
	auth.SetSessionCookie(c, auth.KindAdmin, token, h.cookies)
	return true
}
