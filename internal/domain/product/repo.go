package product

import (
	"context"

	"skuforge/internal/core/id"
)

// Repository persists product payloads. Save must be atomic: the product
// row, its attribute groups and its variants land together or the whole
// write is rolled back.
type Repository interface {
	Save(ctx context.Context, payload *Payload) error
	GetByID(ctx context.Context, productID id.ID) (*Payload, error)
}

// Auditor records a snapshot of every accepted submission for later
// inspection. Audit failures must not fail the submission.
type Auditor interface {
	RecordSubmission(ctx context.Context, payload *Payload)
}
