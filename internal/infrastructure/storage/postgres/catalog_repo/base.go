// Package catalog_repo provides PostgreSQL implementations for the color
// and size pool repositories.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"skuforge/internal/infrastructure/storage/postgres"
)

// basePoolRepo provides common CRUD operations for pool entities
// (colors, sizes). Embed this in specific repositories.
type basePoolRepo[T any] struct {
	txManager  *postgres.TxManager
	tableName  string
	selectCols []string
}

func newBasePoolRepo[T any](txManager *postgres.TxManager, tableName string, selectCols []string) basePoolRepo[T] {
	return basePoolRepo[T]{
		txManager:  txManager,
		tableName:  tableName,
		selectCols: selectCols,
	}
}

// builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *basePoolRepo[T]) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *basePoolRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(r.selectCols...).
		From(r.tableName)
}

// create inserts a new entity using its "db" tags.
func (r *basePoolRepo[T]) create(ctx context.Context, entity T) error {
	data := postgres.StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	// Only columns the table actually has
	filteredData := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filteredData[col] = val
		}
	}

	q := r.builder().
		Insert(r.tableName).
		SetMap(filteredData)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	_, err = r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}

	return nil
}

// list returns all non-deleted rows ordered by orderBy.
func (r *basePoolRepo[T]) list(ctx context.Context, orderBy string) ([]T, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy(orderBy)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []T
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tableName, err)
	}

	return items, nil
}

// nameExists checks for a non-deleted row with the given name.
func (r *basePoolRepo[T]) nameExists(ctx context.Context, name string) (bool, error) {
	q := r.builder().
		Select("1").
		From(r.tableName).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.txManager.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("name exists: %w", err)
	}

	return true, nil
}
