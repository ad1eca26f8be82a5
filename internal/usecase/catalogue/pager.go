package catalogue

import "github.com/Pesokrava/creator_catalogue/internal/domain"

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 12

// Paginate slices a zero-indexed page out of the ordered listing.
// A page past the end yields an empty slice, never an error.
func Paginate(ordered []*domain.ListedVariant, page, pageSize int) *domain.CataloguePage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	total := len(ordered)
	totalPages := (total + pageSize - 1) / pageSize

	items := make([]*domain.ListedVariant, 0, pageSize)
	if page < totalPages {
		start := page * pageSize
		end := min(start+pageSize, total)
		items = append(items, ordered[start:end]...)
	}

	return &domain.CataloguePage{
		Variants:   items,
		TotalCount: total,
		TotalPages: totalPages,
		HasMore:    page < totalPages-1,
	}
}
