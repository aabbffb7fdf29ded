package reminder

import (
	"net/http"

	"fitlife/internal/api"
	"fitlife/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
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

	rem, err := h.service.Create(c.Request.Context(), gym, req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, rem)
}

func (h *Handler) List(c *gin.Context) {
	scope, ok := auth.MemberScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	reminders, err := h.service.ListForMember(c.Request.Context(), scope)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, reminders)
}

func (h *Handler) MarkRead(c *gin.Context) {
	scope, ok := auth.MemberScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	rem, err := h.service.MarkSeen(c.Request.Context(), scope, id)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rem)
}

func (h *Handler) Delete(c *gin.Context) {
	scope, ok := auth.MemberScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), scope, id); err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Reminder deleted"})
}
