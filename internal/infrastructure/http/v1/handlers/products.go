package handlers

import (
	"github.com/gin-gonic/gin"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/domain/product"
	"skuforge/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product submission.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// Submit finalizes and persists the submitted working set atomically.
// POST /api/v1/products
func (h *ProductHandler) Submit(c *gin.Context) {
	var req dto.SubmitProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToSubmitInput()
	if err != nil {
		h.Error(c, err)
		return
	}

	payload, err := h.service.Submit(c.Request.Context(), in)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, dto.FromPayload(payload))
}

// Get returns a previously stored product payload.
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid product id").WithDetail("id", c.Param("id")))
		return
	}

	payload, err := h.service.Get(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPayload(payload))
}
