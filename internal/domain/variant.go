package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductVariant is a purchasable configuration of a product.
// PriceOverride, when set, replaces the product price.
type ProductVariant struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	ProductID     uuid.UUID  `json:"product_id" db:"product_id" validate:"required"`
	PriceOverride *int64     `json:"price_override,omitempty" db:"price_override" validate:"omitempty,gte=0"`
	Images        []string   `json:"images" db:"-" validate:"dive,required,max=2048"`
	SKUs          []SKU      `json:"skus" db:"-" validate:"dive"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// SKU is a stocked, sized unit within a variant.
type SKU struct {
	ID        uuid.UUID `json:"id" db:"id"`
	VariantID uuid.UUID `json:"variant_id" db:"variant_id"`
	Size      string    `json:"size" db:"size" validate:"required,max=20"`
	Stock     int       `json:"stock" db:"stock" validate:"gte=0"`
}

// VariantRepository defines the interface for variant and SKU data access
type VariantRepository interface {
	// Create inserts a variant and its SKUs atomically
	Create(ctx context.Context, variant *ProductVariant) error

	// GetByID retrieves a variant with its SKUs (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductVariant, error)

	// GetByProductID retrieves variants of a product with pagination
	GetByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*ProductVariant, error)

	// Update updates price override and images of a variant
	Update(ctx context.Context, variant *ProductVariant) error

	// UpsertSKU sets the stock for a size of a variant, creating the SKU when missing
	UpsertSKU(ctx context.Context, sku *SKU) error

	// Delete soft-deletes a variant
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByProductID returns the number of variants of a product
	CountByProductID(ctx context.Context, productID uuid.UUID) (int, error)
}
