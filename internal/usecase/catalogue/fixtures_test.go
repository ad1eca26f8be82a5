package catalogue

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

func stableID(format string, a ...any) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf(format, a...)))
}

// makeVariants builds creators x products x variants listed variants in creator-major fetch order.
func makeVariants(creators, products, variants int) []*domain.ListedVariant {
	var out []*domain.ListedVariant
	for c := 0; c < creators; c++ {
		creatorID := stableID("creator-%d", c)
		for p := 0; p < products; p++ {
			productID := stableID("product-%d-%d", c, p)
			for v := 0; v < variants; v++ {
				out = append(out, &domain.ListedVariant{
					ID:        stableID("variant-%d-%d-%d", c, p, v),
					ProductID: productID,
					Product: domain.ProductSummary{
						ID:        productID,
						Name:      fmt.Sprintf("Product %d-%d", c, p),
						Price:     1000,
						Gender:    domain.GenderUnisex,
						Category:  "tops",
						CreatorID: creatorID,
					},
				})
			}
		}
	}
	return out
}

func pricedVariant(name string, price int64, override *int64) *domain.ListedVariant {
	productID := stableID("product-%s", name)
	return &domain.ListedVariant{
		ID:            stableID("variant-%s", name),
		ProductID:     productID,
		PriceOverride: override,
		Product: domain.ProductSummary{
			ID:        productID,
			Name:      name,
			Price:     price,
			CreatorID: stableID("creator-%s", name),
		},
	}
}

func ids(variants []*domain.ListedVariant) []uuid.UUID {
	out := make([]uuid.UUID, len(variants))
	for i, v := range variants {
		out[i] = v.ID
	}
	return out
}

func int64Ptr(v int64) *int64 {
	return &v
}
