package handlers

import (
	"github.com/gin-gonic/gin"

	"skuforge/internal/domain/pricing"
	"skuforge/internal/domain/product"
	"skuforge/internal/infrastructure/http/v1/dto"
)

// VariantHandler handles variant generation for the stateless editor:
// the client sends its working set, the server computes and returns the
// fresh draft set plus the diff.
type VariantHandler struct {
	*BaseHandler
}

// NewVariantHandler creates a new variant handler.
func NewVariantHandler(base *BaseHandler) *VariantHandler {
	return &VariantHandler{BaseHandler: base}
}

// Generate expands the attribute groups into draft variants.
// POST /api/v1/variants/generate
func (h *VariantHandler) Generate(c *gin.Context) {
	var req dto.GenerateVariantsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	basePrice, err := pricing.ParseAmount(req.BasePrice)
	if err != nil {
		h.Error(c, err)
		return
	}

	variants, diff, err := product.Regenerate(req.Groups, req.SKUSeed, basePrice, req.Previous)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.GenerateVariantsResponse{
		Variants: dto.FromVariants(variants),
		Diff:     diff,
	})
}
