package product

import (
	"context"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/core/types"
	"skuforge/internal/domain/attribute"
	"skuforge/internal/domain/pricing"
	"skuforge/internal/domain/variant"
	"skuforge/pkg/logger"
)

// Service finalizes and persists product submissions.
type Service struct {
	repo       Repository
	auditor    Auditor
	markupRate types.Money
	taxRate    types.Money
}

// NewService wires the submission service. auditor may be nil.
func NewService(repo Repository, auditor Auditor, markupRate, taxRate types.Money) *Service {
	return &Service{
		repo:       repo,
		auditor:    auditor,
		markupRate: markupRate,
		taxRate:    taxRate,
	}
}

// SubmitInput is the working set a client hands over for persistence.
// Variant prices are still raw; Submit runs them through the pricing
// pipeline before saving.
type SubmitInput struct {
	ProductID   id.ID
	Name        string
	Mode        Mode
	VATIncluded bool
	Groups      []*attribute.Group
	Variants    []variant.Variant
}

// Submit finalizes every variant price, validates the payload and saves
// it atomically. The input slices are not mutated; the returned payload
// carries the stored (finalized) prices.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Payload, error) {
	if !in.Mode.Valid() {
		return nil, apperror.NewValidation("product mode must be 'simple' or 'variable'")
	}

	finalized := make([]variant.Variant, 0, len(in.Variants))
	for i, v := range in.Variants {
		fv := v.Clone()

		price, err := pricing.Finalize(v.Price, in.VATIncluded, s.markupRate, s.taxRate)
		if err != nil {
			return nil, wrapVariantErr(err, i)
		}
		fv.Price = price

		if v.SalePrice != nil {
			sale, err := pricing.Finalize(*v.SalePrice, in.VATIncluded, s.markupRate, s.taxRate)
			if err != nil {
				return nil, wrapVariantErr(err, i)
			}
			fv.SalePrice = &sale
		}
		finalized = append(finalized, fv)
	}

	productID := in.ProductID
	if id.IsNil(productID) {
		productID = id.New()
	}

	payload := &Payload{
		ProductID: productID,
		Name:      in.Name,
		Mode:      in.Mode,
		Groups:    in.Groups,
		Variants:  finalized,
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, payload); err != nil {
		return nil, err
	}

	if s.auditor != nil {
		s.auditor.RecordSubmission(ctx, payload)
	}

	logger.Info(ctx, "product submitted",
		"product_id", payload.ProductID,
		"mode", payload.Mode,
		"variants", len(payload.Variants),
	)
	return payload, nil
}

// Get loads a previously saved payload.
func (s *Service) Get(ctx context.Context, productID id.ID) (*Payload, error) {
	return s.repo.GetByID(ctx, productID)
}

// Regenerate rebuilds the variant working set from the current groups and
// reports how the fresh combination set relates to the previous variants.
// The fresh set replaces the old one wholesale; manual edits survive only
// through the caller acting on the diff.
func Regenerate(groups []*attribute.Group, skuSeed string, basePrice types.Money, previous []variant.Variant) ([]variant.Variant, variant.Diff, error) {
	fresh, err := variant.Generate(groups)
	if err != nil {
		return nil, variant.Diff{}, err
	}

	old := make([]variant.Combination, 0, len(previous))
	for _, v := range previous {
		if v.CombinationID != "" {
			old = append(old, variant.Combination{ID: v.CombinationID})
		}
	}

	diff := variant.DiffCombinations(old, fresh)
	return variant.Synthesize(fresh, skuSeed, basePrice), diff, nil
}

func wrapVariantErr(err error, index int) error {
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.WithDetail("variantIndex", index)
	}
	return err
}
