package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Gender labels as stored on products.
type Gender string

const (
	GenderMale   Gender = "Homme"
	GenderFemale Gender = "Femme"
	GenderUnisex Gender = "Unisexe"
)

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "DRAFT"
	ProductStatusPublished ProductStatus = "PUBLISHED"
	ProductStatusArchived  ProductStatus = "ARCHIVED"
)

// ProductsCacheTag groups every cache entry derived from product rows.
// Any product mutation must invalidate it.
const ProductsCacheTag = "products"

// Product is owned by a single creator. Price is in minor units (cents).
type Product struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	CreatorID   uuid.UUID     `json:"creator_id" db:"creator_id" validate:"required"`
	Name        string        `json:"name" db:"name" validate:"required,min=1,max=255"`
	Description *string       `json:"description,omitempty" db:"description"`
	Price       int64         `json:"price" db:"price" validate:"gte=0"`
	Style       *string       `json:"style,omitempty" db:"style" validate:"omitempty,max=100"`
	Gender      Gender        `json:"gender" db:"gender" validate:"required,max=50"`
	Category    string        `json:"category" db:"category" validate:"required,max=100"`
	Status      ProductStatus `json:"status" db:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
	Version     int           `json:"version" db:"version"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty" db:"deleted_at"`
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *Product) error

	// GetByID retrieves a product by ID (excludes soft-deleted)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List retrieves a paginated list of products, optionally restricted to one creator
	List(ctx context.Context, creatorID *uuid.UUID, limit, offset int) ([]*Product, error)

	// Update updates an existing product using optimistic locking on Version
	Update(ctx context.Context, product *Product) error

	// SetStatus changes the publication status of a product
	SetStatus(ctx context.Context, id uuid.UUID, status ProductStatus) error

	// Delete soft-deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of products, optionally restricted to one creator
	Count(ctx context.Context, creatorID *uuid.UUID) (int, error)
}
