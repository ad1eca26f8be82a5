package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

// CatalogueRepository implements domain.CatalogueStore for PostgreSQL
type CatalogueRepository struct {
	db *sqlx.DB
}

// NewCatalogueRepository creates a new PostgreSQL catalogue repository
func NewCatalogueRepository(db *sqlx.DB) *CatalogueRepository {
	return &CatalogueRepository{db: db}
}

type listedVariantRow struct {
	ID            uuid.UUID      `db:"id"`
	PriceOverride *int64         `db:"price_override"`
	Images        pq.StringArray `db:"images"`
	domain.ProductSummary
}

type listedSKURow struct {
	VariantID uuid.UUID `db:"variant_id"`
	domain.ListedSKU
}

// FetchVariants returns published variants matching q, newest first, capped at q.Limit.
// The price bound applies to the override when present and to the product price otherwise.
// With sizes selected, only variants holding one of those sizes in stock match, and only
// those SKUs are returned.
func (r *CatalogueRepository) FetchVariants(ctx context.Context, q domain.CatalogueQuery) ([]*domain.ListedVariant, error) {
	query, args := buildFetchQuery(q)

	var rows []listedVariantRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch catalogue variants: %w", err)
	}

	if len(rows) == 0 {
		return []*domain.ListedVariant{}, nil
	}

	variantIDs := make([]string, len(rows))
	for i, row := range rows {
		variantIDs[i] = row.ID.String()
	}

	skus, err := r.fetchSKUs(ctx, variantIDs, q.Sizes)
	if err != nil {
		return nil, err
	}

	variants := make([]*domain.ListedVariant, len(rows))
	for i, row := range rows {
		images := []string(row.Images)
		if images == nil {
			images = []string{}
		}
		variantSKUs := skus[row.ID]
		if variantSKUs == nil {
			variantSKUs = []domain.ListedSKU{}
		}
		variants[i] = &domain.ListedVariant{
			ID:            row.ID,
			Images:        images,
			PriceOverride: row.PriceOverride,
			ProductID:     row.ProductSummary.ID,
			Product:       row.ProductSummary,
			SKUs:          variantSKUs,
		}
	}

	return variants, nil
}

func (r *CatalogueRepository) fetchSKUs(ctx context.Context, variantIDs, sizes []string) (map[uuid.UUID][]domain.ListedSKU, error) {
	query := `
		SELECT id, variant_id, size, stock
		FROM skus
		WHERE variant_id = ANY($1::uuid[]) AND stock > 0`
	args := []any{pq.Array(variantIDs)}

	if len(sizes) > 0 {
		query += ` AND size = ANY($2)`
		args = append(args, pq.Array(sizes))
	}
	query += ` ORDER BY variant_id, size`

	var rows []listedSKURow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch catalogue skus: %w", err)
	}

	out := make(map[uuid.UUID][]domain.ListedSKU, len(variantIDs))
	for _, row := range rows {
		out[row.VariantID] = append(out[row.VariantID], row.ListedSKU)
	}
	return out, nil
}

func buildFetchQuery(q domain.CatalogueQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			v.id, v.price_override, v.images,
			p.id AS product_id, p.name AS product_name, p.price AS product_price,
			p.style AS product_style, p.category AS product_category,
			p.gender AS product_gender, p.creator_id AS product_creator_id
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		WHERE p.status = 'PUBLISHED'
			AND p.deleted_at IS NULL
			AND v.deleted_at IS NULL
			AND (
				(v.price_override IS NOT NULL AND v.price_override BETWEEN $1 AND $2)
				OR (v.price_override IS NULL AND p.price BETWEEN $1 AND $2)
			)`)

	args := []any{q.MinPrice, q.MaxPrice}
	argCounter := 3

	if len(q.Styles) > 0 {
		fmt.Fprintf(&sb, "\n\t\t\tAND p.style = ANY($%d)", argCounter)
		args = append(args, pq.Array(q.Styles))
		argCounter++
	}

	if len(q.Genders) > 0 {
		fmt.Fprintf(&sb, "\n\t\t\tAND p.gender = ANY($%d)", argCounter)
		args = append(args, pq.Array(q.Genders))
		argCounter++
	}

	if len(q.Sizes) > 0 {
		fmt.Fprintf(&sb, `
			AND EXISTS (
				SELECT 1 FROM skus s
				WHERE s.variant_id = v.id AND s.size = ANY($%d) AND s.stock > 0
			)`, argCounter)
		args = append(args, pq.Array(q.Sizes))
		argCounter++
	}

	fmt.Fprintf(&sb, "\n\t\tORDER BY v.created_at DESC, v.id\n\t\tLIMIT $%d", argCounter)
	args = append(args, q.Limit)

	return sb.String(), args
}

// MaxPublishedPrice returns the highest product price among published products
func (r *CatalogueRepository) MaxPublishedPrice(ctx context.Context) (int64, error) {
	query := `
		SELECT MAX(price)
		FROM products
		WHERE status = 'PUBLISHED' AND deleted_at IS NULL
	`

	var maxPrice sql.NullInt64
	if err := r.db.GetContext(ctx, &maxPrice, query); err != nil {
		return 0, fmt.Errorf("failed to query max price: %w", err)
	}

	if !maxPrice.Valid {
		return 0, domain.ErrNotFound
	}

	return maxPrice.Int64, nil
}
