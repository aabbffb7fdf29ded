package member

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

func (h *Handler) List(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	members, err := h.service.List(c.Request.Context(), gym)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

func (h *Handler) Create(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	var req CreateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Create(c.Request.Context(), gym, req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) Update(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Update(c.Request.Context(), gym, id, req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), gym, id); err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deleted successfully"})
}

// SendPaymentReminder pushes a notice onto the member's dashboard.
func (h *Handler) SendPaymentReminder(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if _, err := h.service.SendPaymentNotice(c.Request.Context(), gym, id); err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Reminder sent to member dashboard"})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	token, _, err := h.sessions.Issue(m.ID, auth.KindMember)
	if err != nil {
		api.Fail(c, err)
		return
	}
	auth.SetSessionCookie(c, auth.KindMember, token, h.cookies)

	email := ""
	if m.Email != nil {
		email = *m.Email
	}
	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Member:  Summary{ID: m.ID, Name: m.Name, Email: email, GymName: m.GymName},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.MemberCookieName); err == nil && token != "" {
		err := h.sessions.Revoke(c.Request.Context(), token, auth.KindMember)
		if err != nil && !errors.Is(err, auth.ErrInvalidToken) {
			logger.Warn("member session revocation failed", "error", err.Error())
		}
	}

	auth.ClearSessionCookie(c, auth.KindMember, h.cookies)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member logged out successfully"})
}

func (h *Handler) Me(c *gin.Context) {
	scope, ok := auth.MemberScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	m, err := h.service.Profile(c.Request.Context(), scope)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
