package payment

import (
	"bytes"
	"fmt"
	"net/http"

	"fitlife/internal/api"
	"fitlife/internal/auth"
	"fitlife/internal/receipt"

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

	payments, err := h.service.List(c.Request.Context(), gym)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
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

	p, err := h.service.Create(c.Request.Context(), gym, req)
	if err != nil {
		api.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateResponse{
		Message:       "Payment recorded",
		PaymentID:     p.ID,
		ReceiptNumber: p.ReceiptNumber,
	})
}

// Receipt streams the PDF. The document is rendered before any header is
// written so that failures still get a JSON body.
func (h *Handler) Receipt(c *gin.Context) {
	gym, ok := auth.AdminScopeFrom(c)
	if !ok {
		api.Fail(c, auth.ErrUnauthorized)
		return
	}

	id, ok := api.ParamID(c, "id")
	if !ok {
		return
	}

	data, err := h.service.Receipt(c.Request.Context(), gym, id)
	if err != nil {
		api.Fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := receipt.Render(&buf, data); err != nil {
		api.Fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
