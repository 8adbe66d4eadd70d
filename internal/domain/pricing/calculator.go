// Package pricing implements the markup/tax pipeline that turns an input
// amount (cost or VAT-inclusive) into the stored customer-facing price.
// Pure decimal arithmetic; rates are supplied per call, never hardcoded.
package pricing

import (
	"skuforge/internal/core/apperror"
	"skuforge/internal/core/types"
)

// Finalize converts an input amount into the stored price, rounded to two
// fractional digits exactly once at the end.
//
// vatIncluded true: the amount already contains tax and is stored as-is.
// vatIncluded false: the amount is a cost basis; markup applies first,
// then tax on the marked-up amount (tax is owed on the sale price, not
// the wholesale cost).
//
// Negative amounts are rejected with INVALID_PRICE_INPUT; nothing is
// clamped or defaulted.
func Finalize(amount types.Money, vatIncluded bool, markupRate, taxRate types.Money) (types.Money, error) {
	b, err := Compute(amount, vatIncluded, markupRate, taxRate)
	if err != nil {
		return types.Zero(), err
	}
	return b.FinalPrice, nil
}

// Breakdown exposes the intermediate quantities of one Finalize run for
// audit and display. FinalPrice always equals the Finalize result for the
// same inputs.
type Breakdown struct {
	Cost             types.Money `json:"cost"`
	MarkupAmount     types.Money `json:"markupAmount"`
	PriceAfterMarkup types.Money `json:"priceAfterMarkup"`
	TaxAmount        types.Money `json:"taxAmount"`
	FinalPrice       types.Money `json:"finalPrice"`
}

// Compute runs the pipeline and returns every intermediate step.
// Intermediates keep full precision; only FinalPrice is rounded.
func Compute(amount types.Money, vatIncluded bool, markupRate, taxRate types.Money) (Breakdown, error) {
	if amount.IsNegative() {
		return Breakdown{}, apperror.NewInvalidPriceInput(amount.String())
	}

	if vatIncluded {
		final := amount.Round(2)
		return Breakdown{
			Cost:             amount,
			MarkupAmount:     types.Zero(),
			PriceAfterMarkup: amount,
			TaxAmount:        types.Zero(),
			FinalPrice:       final,
		}, nil
	}

	markupAmount := amount.Mul(markupRate)
	afterMarkup := amount.Add(markupAmount)
	taxAmount := afterMarkup.Mul(taxRate)
	// single rounding at the end; rounding intermediates would drift
	final := afterMarkup.Add(taxAmount).Round(2)

	return Breakdown{
		Cost:             amount,
		MarkupAmount:     markupAmount,
		PriceAfterMarkup: afterMarkup,
		TaxAmount:        taxAmount,
		FinalPrice:       final,
	}, nil
}

// ParseAmount parses a price string from user input. Non-numeric or
// negative input is rejected with INVALID_PRICE_INPUT.
func ParseAmount(raw string) (types.Money, error) {
	amount, err := types.NewMoneyFromString(raw)
	if err != nil {
		return types.Zero(), apperror.NewInvalidPriceInput(raw).WithCause(err)
	}
	if amount.IsNegative() {
		return types.Zero(), apperror.NewInvalidPriceInput(raw)
	}
	return amount, nil
}
