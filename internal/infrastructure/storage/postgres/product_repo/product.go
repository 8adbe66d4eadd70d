// Package product_repo provides the PostgreSQL implementation of the
// product payload repository.
package product_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"skuforge/internal/core/apperror"
	"skuforge/internal/core/id"
	"skuforge/internal/core/types"
	"skuforge/internal/domain/attribute"
	"skuforge/internal/domain/product"
	"skuforge/internal/domain/variant"
	"skuforge/internal/infrastructure/storage/postgres"
)

const (
	productTable = "products"
	variantTable = "product_variants"
)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	txManager *postgres.TxManager
}

// Compile-time check that ProductRepo implements product.Repository.
var _ product.Repository = (*ProductRepo)(nil)

// NewProductRepo creates a new product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{txManager: txManager}
}

func (r *ProductRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// productRow is the flat products table shape. Attribute groups are kept
// as a JSON document: they are always read and written as a whole with
// the product, never queried by column.
type productRow struct {
	ID     id.ID           `db:"id"`
	Name   string          `db:"name"`
	Mode   string          `db:"product_mode"`
	Groups json.RawMessage `db:"attribute_groups"`
}

// variantRow is one product_variants row. Position preserves the working
// set order across round trips.
type variantRow struct {
	ProductID     id.ID           `db:"product_id"`
	Position      int             `db:"position"`
	SKU           string          `db:"sku"`
	Price         types.Money     `db:"price"`
	SalePrice     *types.Money    `db:"sale_price"`
	InStock       int             `db:"in_stock"`
	Backorderable bool            `db:"backorderable"`
	CombinationID string          `db:"combination_id"`
	DisplayName   string          `db:"display_name"`
	Attributes    json.RawMessage `db:"attributes"`
}

// Save writes the whole payload in one transaction: upsert the product
// row, then replace its variant rows. Either everything lands or nothing
// does.
func (r *ProductRepo) Save(ctx context.Context, payload *product.Payload) error {
	groupsJSON, err := json.Marshal(payload.Groups)
	if err != nil {
		return fmt.Errorf("marshal attribute groups: %w", err)
	}

	return r.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		querier := r.txManager.GetQuerier(ctx)

		upsert := r.builder().
			Insert(productTable).
			Columns("id", "name", "product_mode", "attribute_groups").
			Values(payload.ProductID, payload.Name, string(payload.Mode), groupsJSON).
			Suffix(`ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				product_mode = EXCLUDED.product_mode,
				attribute_groups = EXCLUDED.attribute_groups`)

		sql, args, err := upsert.ToSql()
		if err != nil {
			return fmt.Errorf("build product upsert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("upsert product: %w", err)
		}

		// Replace, don't merge: the payload is the full variant set
		del := r.builder().
			Delete(variantTable).
			Where(squirrel.Eq{"product_id": payload.ProductID})
		sql, args, err = del.ToSql()
		if err != nil {
			return fmt.Errorf("build variant delete: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("delete variants: %w", err)
		}

		if len(payload.Variants) == 0 {
			return nil
		}

		ins := r.builder().
			Insert(variantTable).
			Columns("product_id", "position", "sku", "price", "sale_price",
				"in_stock", "backorderable", "combination_id", "display_name", "attributes")
		for i, v := range payload.Variants {
			attrsJSON, err := json.Marshal(v.Attributes)
			if err != nil {
				return fmt.Errorf("marshal variant attributes: %w", err)
			}
			ins = ins.Values(payload.ProductID, i, v.SKU, v.Price, v.SalePrice,
				v.InStock, v.Backorderable, v.CombinationID, v.DisplayName, attrsJSON)
		}
		sql, args, err = ins.ToSql()
		if err != nil {
			return fmt.Errorf("build variant insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert variants: %w", err)
		}

		return nil
	})
}

// GetByID loads a payload with its variants in working-set order.
func (r *ProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Payload, error) {
	querier := r.txManager.GetQuerier(ctx)

	q := r.builder().
		Select("id", "name", "product_mode", "attribute_groups").
		From(productTable).
		Where(squirrel.Eq{"id": productID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", productID.String())
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	var groups []*attribute.Group
	if len(row.Groups) > 0 {
		if err := json.Unmarshal(row.Groups, &groups); err != nil {
			return nil, fmt.Errorf("unmarshal attribute groups: %w", err)
		}
	}

	vq := r.builder().
		Select("product_id", "position", "sku", "price", "sale_price",
			"in_stock", "backorderable", "combination_id", "display_name", "attributes").
		From(variantTable).
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("position ASC")

	sql, args, err = vq.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build variant query: %w", err)
	}

	var vrows []variantRow
	if err := pgxscan.Select(ctx, querier, &vrows, sql, args...); err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}

	variants := make([]variant.Variant, 0, len(vrows))
	for _, vr := range vrows {
		v := variant.Variant{
			SKU:           vr.SKU,
			Price:         vr.Price,
			SalePrice:     vr.SalePrice,
			InStock:       vr.InStock,
			Backorderable: vr.Backorderable,
			CombinationID: vr.CombinationID,
			DisplayName:   vr.DisplayName,
		}
		if len(vr.Attributes) > 0 {
			if err := json.Unmarshal(vr.Attributes, &v.Attributes); err != nil {
				return nil, fmt.Errorf("unmarshal variant attributes: %w", err)
			}
		}
		variants = append(variants, v)
	}

	return &product.Payload{
		ProductID: row.ID,
		Name:      row.Name,
		Mode:      product.Mode(row.Mode),
		Groups:    groups,
		Variants:  variants,
	}, nil
}
