package catalogue

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

// Order returns the variants ordered for mode. The input slice is not modified.
//
// Price modes sort by effective price with a stable sort, so ties keep fetch order.
// Every other mode applies the seeded creator/product interleaved shuffle.
func Order(variants []*domain.ListedVariant, mode domain.SortMode, seed string) []*domain.ListedVariant {
	out := slices.Clone(variants)

	switch mode {
	case domain.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b *domain.ListedVariant) int {
			return cmp.Compare(a.EffectivePrice(), b.EffectivePrice())
		})
		return out
	case domain.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b *domain.ListedVariant) int {
			return cmp.Compare(b.EffectivePrice(), a.EffectivePrice())
		})
		return out
	default:
		return Interleave(out, NewRand(seed))
	}
}

// Interleave groups variants by creator then product, shuffles every level with rng
// and merges groups round-robin so consecutive items rarely share a creator or product.
//
// rng is consumed in a fixed order: for each creator in first-seen order, each of its
// product groups in first-seen order, then the creator's product-group order; finally
// the creator order.
func Interleave(variants []*domain.ListedVariant, rng *Rand) []*domain.ListedVariant {
	byCreator := groupBy(variants, func(v *domain.ListedVariant) uuid.UUID {
		return v.Product.CreatorID
	})

	creatorSeqs := make([][]*domain.ListedVariant, 0, len(byCreator))
	for _, creator := range byCreator {
		byProduct := groupBy(creator.items, func(v *domain.ListedVariant) uuid.UUID {
			return v.ProductID
		})

		productSeqs := make([][]*domain.ListedVariant, 0, len(byProduct))
		for _, product := range byProduct {
			shuffle(product.items, rng)
			productSeqs = append(productSeqs, product.items)
		}
		shuffle(productSeqs, rng)

		creatorSeqs = append(creatorSeqs, roundRobin(productSeqs))
	}
	shuffle(creatorSeqs, rng)

	return roundRobin(creatorSeqs)
}

type group[K comparable, V any] struct {
	key   K
	items []V
}

// groupBy partitions items by key; groups appear in first-seen order and keep item order.
func groupBy[K comparable, V any](items []V, key func(V) K) []group[K, V] {
	var groups []group[K, V]
	index := make(map[K]int)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group[K, V]{key: k})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}

// shuffle is an in-place Fisher-Yates shuffle driven by rng.
func shuffle[T any](items []T, rng *Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// roundRobin takes element 0 of every sequence, then element 1, and so on,
// skipping exhausted sequences.
func roundRobin[T any](seqs [][]T) []T {
	longest, total := 0, 0
	for _, s := range seqs {
		longest = max(longest, len(s))
		total += len(s)
	}

	out := make([]T, 0, total)
	for i := 0; i < longest; i++ {
		for _, s := range seqs {
			if i < len(s) {
				out = append(out, s[i])
			}
		}
	}
	return out
}
