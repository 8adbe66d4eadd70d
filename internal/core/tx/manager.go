// Package tx declares the transaction contracts the domain layer depends
// on; the pgx implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager runs a function inside a database transaction. Submission
// persistence is the main consumer: the product upsert and the variant
// rewrite either both commit or both roll back.
type Manager interface {
	// RunInTransaction begins a transaction, runs fn and commits it.
	// Any error from fn rolls the transaction back and is returned
	// unchanged. A nested call joins the transaction already carried
	// by ctx instead of opening a second one.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager adds read-only execution for the lookup paths
// (catalog pool listings, product reads, audit history).
type ReadOnlyManager interface {
	Manager

	// ReadOnly runs fn in a read-only transaction; writes inside fn fail.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
