package handlers

import (
	"github.com/gin-gonic/gin"

	"skuforge/internal/core/types"
	"skuforge/internal/domain/pricing"
	"skuforge/internal/infrastructure/http/v1/dto"
)

// PricingHandler exposes the pricing pipeline for preview.
type PricingHandler struct {
	*BaseHandler
	markupRate types.Money
	taxRate    types.Money
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(base *BaseHandler, markupRate, taxRate types.Money) *PricingHandler {
	return &PricingHandler{BaseHandler: base, markupRate: markupRate, taxRate: taxRate}
}

// Breakdown returns every intermediate step of one finalization run so
// the editor can show where the final price comes from.
// POST /api/v1/pricing/breakdown
func (h *PricingHandler) Breakdown(c *gin.Context) {
	var req dto.BreakdownRequest
	if !h.BindJSON(c, &req) {
		return
	}

	amount, err := pricing.ParseAmount(req.Amount)
	if err != nil {
		h.Error(c, err)
		return
	}

	breakdown, err := pricing.Compute(amount, req.VATIncluded, h.markupRate, h.taxRate)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBreakdown(breakdown))
}
