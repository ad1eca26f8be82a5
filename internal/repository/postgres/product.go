package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

const productColumns = `id, creator_id, name, description, price, style, gender, category, status,
		version, created_at, updated_at, deleted_at`

// ProductRepository implements domain.ProductRepository for PostgreSQL
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (creator_id, name, description, price, style, gender, category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, version, created_at, updated_at
	`

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	return r.db.QueryRowxContext(
		ctx,
		query,
		product.CreatorID,
		product.Name,
		product.Description,
		product.Price,
		product.Style,
		product.Gender,
		product.Category,
		product.Status,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(
		&product.ID,
		&product.Version,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL
	`

	var product domain.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &product, nil
}

// List retrieves a paginated list of products, newest first
func (r *ProductRepository) List(ctx context.Context, creatorID *uuid.UUID, limit, offset int) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE deleted_at IS NULL AND ($1::uuid IS NULL OR creator_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var products []*domain.Product
	err := r.db.SelectContext(ctx, &products, query, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Update updates an existing product
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, style = $4, gender = $5, category = $6,
			updated_at = $7, version = version + 1
		WHERE id = $8 AND deleted_at IS NULL AND version = $9
		RETURNING version, updated_at
	`

	product.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Style,
		product.Gender,
		product.Category,
		product.UpdatedAt,
		product.ID,
		product.Version,
	).Scan(&product.Version, &product.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

// SetStatus changes the publication status of a product
func (r *ProductRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProductStatus) error {
	query := `
		UPDATE products
		SET status = $1, updated_at = $2, version = version + 1
		WHERE id = $3 AND deleted_at IS NULL
	`

	return r.execAffectingOne(ctx, query, status, time.Now(), id)
}

// Delete soft-deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE products
		SET deleted_at = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	return r.execAffectingOne(ctx, query, time.Now(), id)
}

// Count returns the total number of products
func (r *ProductRepository) Count(ctx context.Context, creatorID *uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM products WHERE deleted_at IS NULL AND ($1::uuid IS NULL OR creator_id = $1)`

	var count int
	err := r.db.GetContext(ctx, &count, query, creatorID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ProductRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
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
