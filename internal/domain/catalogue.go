package domain

import (
	"context"

	"github.com/google/uuid"
)

// SortMode selects how the listing is ordered.
type SortMode string

const (
	// SortNewest is the default relevance mode backed by the seeded interleaved shuffle.
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
)

// ParseSortMode maps a query value to a SortMode; unknown values yield SortNewest.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNewest
	}
}

// CatalogueQuery is the normalized storage query for one listing request.
// Prices are inclusive bounds in minor units. Empty slices mean "no restriction".
type CatalogueQuery struct {
	Styles   []string
	Sizes    []string
	Genders  []string
	MinPrice int64
	MaxPrice int64
	Limit    int
}

// ProductSummary is the read-only product projection nested in a listed variant.
type ProductSummary struct {
	ID        uuid.UUID `json:"id" db:"product_id"`
	Name      string    `json:"name" db:"product_name"`
	Price     int64     `json:"price" db:"product_price"`
	Style     *string   `json:"style" db:"product_style"`
	Category  string    `json:"category" db:"product_category"`
	Gender    Gender    `json:"gender" db:"product_gender"`
	CreatorID uuid.UUID `json:"creatorId" db:"product_creator_id"`
}

// ListedVariant is the unit of listing: a variant, its product and its in-stock SKUs.
type ListedVariant struct {
	ID            uuid.UUID      `json:"id"`
	Images        []string       `json:"images"`
	PriceOverride *int64         `json:"priceOverride"`
	ProductID     uuid.UUID      `json:"productId"`
	Product       ProductSummary `json:"product"`
	SKUs          []ListedSKU    `json:"skus"`
}

// ListedSKU is a SKU as exposed in the listing.
type ListedSKU struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Size  string    `json:"size" db:"size"`
	Stock int       `json:"stock" db:"stock"`
}

// EffectivePrice is the override when present, the product price otherwise.
func (v *ListedVariant) EffectivePrice() int64 {
	if v.PriceOverride != nil {
		return *v.PriceOverride
	}
	return v.Product.Price
}

// CataloguePage is one page of the ordered listing.
//
// TotalCount is measured after the fetch cap, so once matches exceed the cap
// it under-reports the real number of matching variants.
type CataloguePage struct {
	Variants   []*ListedVariant `json:"variants"`
	TotalCount int              `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
	HasMore    bool             `json:"hasMore"`
	Seed       string           `json:"seed"`
}

// CatalogueStore is the read surface the listing pipeline depends on.
type CatalogueStore interface {
	// FetchVariants returns at most q.Limit published variants matching q,
	// in a stable order.
	FetchVariants(ctx context.Context, q CatalogueQuery) ([]*ListedVariant, error)

	// MaxPublishedPrice returns the highest price among published products.
	// ErrNotFound is returned when no product is published.
	MaxPublishedPrice(ctx context.Context) (int64, error)
}
