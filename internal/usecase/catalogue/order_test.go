package catalogue

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

func TestOrder_Deterministic(t *testing.T) {
	variants := makeVariants(3, 3, 4)

	first := Order(variants, domain.SortNewest, "pinned-seed")
	second := Order(variants, domain.SortNewest, "pinned-seed")

	assert.Equal(t, ids(first), ids(second))
}

func TestOrder_SeedSensitivity(t *testing.T) {
	variants := makeVariants(2, 2, 2)

	pairs := [][2]string{
		{"alpha", "beta"},
		{"seed-1", "seed-2"},
		{"monday", "tuesday"},
		{"x", "y"},
	}

	for _, pair := range pairs {
		a := Order(variants, domain.SortNewest, pair[0])
		b := Order(variants, domain.SortNewest, pair[1])
		assert.NotEqual(t, ids(a), ids(b), "seeds %q and %q", pair[0], pair[1])
	}
}

func TestOrder_IsPermutation(t *testing.T) {
	variants := makeVariants(4, 3, 3)
	for i, v := range variants {
		v.Product.Price = int64(1000 + (i%5)*250)
	}

	for _, mode := range []domain.SortMode{domain.SortNewest, domain.SortPriceAsc, domain.SortPriceDesc} {
		out := Order(variants, mode, "perm")
		assert.ElementsMatch(t, ids(variants), ids(out), "mode %s", mode)
	}
}

func TestOrder_DoesNotModifyInput(t *testing.T) {
	variants := makeVariants(2, 2, 3)
	before := ids(variants)

	_ = Order(variants, domain.SortNewest, "seed")
	_ = Order(variants, domain.SortPriceDesc, "seed")

	assert.Equal(t, before, ids(variants))
}

func TestOrder_EmptyInput(t *testing.T) {
	assert.Empty(t, Order(nil, domain.SortNewest, "seed"))
	assert.Empty(t, Order([]*domain.ListedVariant{}, domain.SortPriceAsc, "seed"))
}

func TestOrder_SingleVariant(t *testing.T) {
	variants := makeVariants(1, 1, 1)

	out := Order(variants, domain.SortNewest, "seed")

	assert.Equal(t, ids(variants), ids(out))
}

func TestOrder_PriceAscStable(t *testing.T) {
	first := pricedVariant("first", 500, nil)
	second := pricedVariant("second", 500, nil)
	cheap := pricedVariant("cheap", 300, nil)

	out := Order([]*domain.ListedVariant{first, second, cheap}, domain.SortPriceAsc, "")

	assert.Equal(t, []uuid.UUID{cheap.ID, first.ID, second.ID}, ids(out))
}

func TestOrder_PriceDescStable(t *testing.T) {
	first := pricedVariant("first", 500, nil)
	second := pricedVariant("second", 500, nil)
	cheap := pricedVariant("cheap", 300, nil)

	out := Order([]*domain.ListedVariant{cheap, first, second}, domain.SortPriceDesc, "")

	assert.Equal(t, []uuid.UUID{first.ID, second.ID, cheap.ID}, ids(out))
}

func TestOrder_PriceUsesOverride(t *testing.T) {
	discounted := pricedVariant("discounted", 9000, int64Ptr(100))
	regular := pricedVariant("regular", 500, nil)
	premium := pricedVariant("premium", 200, int64Ptr(7000))

	out := Order([]*domain.ListedVariant{premium, regular, discounted}, domain.SortPriceAsc, "")

	assert.Equal(t, []uuid.UUID{discounted.ID, regular.ID, premium.ID}, ids(out))
}

func TestInterleave_KnownPermutation(t *testing.T) {
	variants := makeVariants(1, 1, 5)

	out := Interleave(variants, NewRand("catalogue"))

	expected := []uuid.UUID{variants[3].ID, variants[4].ID, variants[1].ID, variants[2].ID, variants[0].ID}
	assert.Equal(t, expected, ids(out))
}

func TestInterleave_KnownCreatorInterleave(t *testing.T) {
	// creator 0: variants[0], variants[1]; creator 1: variants[2], variants[3]
	variants := makeVariants(2, 1, 2)

	out := Interleave(variants, NewRand("catalogue"))

	expected := []uuid.UUID{variants[2].ID, variants[1].ID, variants[3].ID, variants[0].ID}
	assert.Equal(t, expected, ids(out))
}

func TestInterleave_NoThreeConsecutiveFromSameCreator(t *testing.T) {
	variants := makeVariants(3, 2, 5)

	for i := 0; i < 200; i++ {
		seed := fmt.Sprintf("seed-%d", i)
		out := Order(variants, domain.SortNewest, seed)
		require.Len(t, out, 30)

		for j := 2; j < len(out); j++ {
			sameRun := out[j].Product.CreatorID == out[j-1].Product.CreatorID &&
				out[j].Product.CreatorID == out[j-2].Product.CreatorID
			assert.False(t, sameRun, "seed %s position %d", seed, j)
		}
	}
}

func TestInterleave_SpreadsProductsWithinCreator(t *testing.T) {
	variants := makeVariants(1, 3, 4)

	out := Interleave(variants, NewRand("spread"))

	for j := 1; j < len(out); j++ {
		assert.NotEqual(t, out[j-1].ProductID, out[j].ProductID, "position %d", j)
	}
}

func TestInterleave_UnevenGroups(t *testing.T) {
	variants := append(makeVariants(1, 1, 6), makeVariants(2, 1, 1)[1:]...)

	out := Interleave(variants, NewRand("uneven"))

	assert.ElementsMatch(t, ids(variants), ids(out))
}

func TestGroupBy_FirstSeenOrder(t *testing.T) {
	groups := groupBy([]string{"b1", "a1", "b2", "c1", "a2"}, func(s string) byte { return s[0] })

	require.Len(t, groups, 3)
	assert.Equal(t, byte('b'), groups[0].key)
	assert.Equal(t, []string{"b1", "b2"}, groups[0].items)
	assert.Equal(t, byte('a'), groups[1].key)
	assert.Equal(t, []string{"a1", "a2"}, groups[1].items)
	assert.Equal(t, []string{"c1"}, groups[2].items)
}

func TestRoundRobin(t *testing.T) {
	assert.Equal(t, []int{1, 4, 6, 2, 5, 3}, roundRobin([][]int{{1, 2, 3}, {4, 5}, {6}}))
	assert.Empty(t, roundRobin([][]int{}))
	assert.Empty(t, roundRobin([][]int{{}, {}}))
}
