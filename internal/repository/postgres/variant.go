package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

// VariantRepository implements domain.VariantRepository for PostgreSQL
type VariantRepository struct {
	db *sqlx.DB
}

// NewVariantRepository creates a new PostgreSQL variant repository
func NewVariantRepository(db *sqlx.DB) *VariantRepository {
	return &VariantRepository{db: db}
}

type variantRow struct {
	ID            uuid.UUID      `db:"id"`
	ProductID     uuid.UUID      `db:"product_id"`
	PriceOverride *int64         `db:"price_override"`
	Images        pq.StringArray `db:"images"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

func (row variantRow) toDomain() *domain.ProductVariant {
	images := []string(row.Images)
	if images == nil {
		images = []string{}
	}
	return &domain.ProductVariant{
		ID:            row.ID,
		ProductID:     row.ProductID,
		PriceOverride: row.PriceOverride,
		Images:        images,
		SKUs:          []domain.SKU{},
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
		DeletedAt:     row.DeletedAt,
	}
}

// Create inserts a variant and its SKUs in one transaction
func (r *VariantRepository) Create(ctx context.Context, variant *domain.ProductVariant) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	variant.CreatedAt = now
	variant.UpdatedAt = now

	err = tx.QueryRowxContext(
		ctx,
		`INSERT INTO product_variants (product_id, price_override, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		variant.ProductID,
		variant.PriceOverride,
		pq.Array(variant.Images),
		variant.CreatedAt,
		variant.UpdatedAt,
	).Scan(&variant.ID)
	if err != nil {
		return err
	}

	for i := range variant.SKUs {
		sku := &variant.SKUs[i]
		sku.VariantID = variant.ID
		err = tx.QueryRowxContext(
			ctx,
			`INSERT INTO skus (variant_id, size, stock) VALUES ($1, $2, $3) RETURNING id`,
			sku.VariantID,
			sku.Size,
			sku.Stock,
		).Scan(&sku.ID)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a variant and its SKUs
func (r *VariantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, price_override, images, created_at, updated_at, deleted_at
		FROM product_variants
		WHERE id = $1 AND deleted_at IS NULL
	`

	var row variantRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	variant := row.toDomain()

	skuQuery := `SELECT id, variant_id, size, stock FROM skus WHERE variant_id = $1 ORDER BY size`
	if err := r.db.SelectContext(ctx, &variant.SKUs, skuQuery, id); err != nil {
		return nil, err
	}

	return variant, nil
}

// GetByProductID retrieves variants of a product, oldest first. SKUs are not loaded.
func (r *VariantRepository) GetByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, price_override, images, created_at, updated_at, deleted_at
		FROM product_variants
		WHERE product_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	var rows []variantRow
	if err := r.db.SelectContext(ctx, &rows, query, productID, limit, offset); err != nil {
		return nil, err
	}

	variants := make([]*domain.ProductVariant, len(rows))
	for i, row := range rows {
		variants[i] = row.toDomain()
	}

	return variants, nil
}

// Update updates price override and images of a variant
func (r *VariantRepository) Update(ctx context.Context, variant *domain.ProductVariant) error {
	query := `
		UPDATE product_variants
		SET price_override = $1, images = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL
		RETURNING product_id, created_at
	`

	variant.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(
		ctx,
		query,
		variant.PriceOverride,
		pq.Array(variant.Images),
		variant.UpdatedAt,
		variant.ID,
	).Scan(&variant.ProductID, &variant.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	return nil
}

// UpsertSKU sets the stock of one size, creating the SKU when it does not exist yet
func (r *VariantRepository) UpsertSKU(ctx context.Context, sku *domain.SKU) error {
	query := `
		INSERT INTO skus (variant_id, size, stock)
		VALUES ($1, $2, $3)
		ON CONFLICT (variant_id, size) DO UPDATE SET stock = EXCLUDED.stock
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query, sku.VariantID, sku.Size, sku.Stock).Scan(&sku.ID)
}

// Delete soft-deletes a variant
func (r *VariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE product_variants
		SET deleted_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// CountByProductID returns the number of variants of a product
func (r *VariantRepository) CountByProductID(ctx context.Context, productID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM product_variants WHERE product_id = $1 AND deleted_at IS NULL`

	var count int
	if err := r.db.GetContext(ctx, &count, query, productID); err != nil {
		return 0, err
	}

	return count, nil
}
