package announcement

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

func (h *Handler) List(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}
	h.list(c, gym)
}

// ListForMember shows the announcements of the member's own gym.
func (h *Handler) ListForMember(c *gin.Context) {
	scope, ok := auth.MemberScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}
	h.list(c, scope.Gym())
}

func (h *Handler) list(c *gin.Context, gym auth.AdminScope) {
	announcements, err := h.service.ListByGym(c.Request.Context(), gym)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, announcements)
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

	a, err := h.service.Create(c.Request.Context(), gym, req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
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

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Announcement deleted"})
}
