package dto

import (
	"skuforge/internal/core/types"
	"skuforge/internal/domain/pricing"
)

// BreakdownRequest asks for the pricing pipeline's intermediate steps.
type BreakdownRequest struct {
	Amount      string `json:"amount" binding:"required"`
	VATIncluded bool   `json:"vatIncluded"`
}

// BreakdownResponse exposes each pipeline step as a formatted amount.
type BreakdownResponse struct {
	Cost             string `json:"cost"`
	MarkupAmount     string `json:"markupAmount"`
	PriceAfterMarkup string `json:"priceAfterMarkup"`
	TaxAmount        string `json:"taxAmount"`
	FinalPrice       string `json:"finalPrice"`
}

// FromBreakdown creates response from a domain breakdown.
func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Cost:             types.FormatPrice(b.Cost),
		MarkupAmount:     types.FormatPrice(b.MarkupAmount),
		PriceAfterMarkup: types.FormatPrice(b.PriceAfterMarkup),
		TaxAmount:        types.FormatPrice(b.TaxAmount),
		FinalPrice:       types.FormatPrice(b.FinalPrice),
	}
}
