package catalogue

import (
	"math"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

// Criteria is the raw filter input of one listing request, as parsed from the query string.
// MinPrice and MaxPrice are in major currency units; nil means "not given".
type Criteria struct {
	Styles   []string
	Sizes    []string
	Genders  []string
	Sort     domain.SortMode
	MinPrice *int64
	MaxPrice *int64
	Page     int
	Seed     string
}

// maxMajorPrice keeps major*100 inside int64.
const maxMajorPrice = math.MaxInt64 / 100

// ExpandGenders applies the neutral-label rule to a gender selection.
//
// Selecting "Homme" or "Femme" also selects "Unisexe". Selecting exactly
// {"Unisexe"} also selects both binary labels. Any other selection is returned
// as is. Unknown labels pass through but never trigger expansion.
// The result is duplicate-free and ExpandGenders(ExpandGenders(s)) equals ExpandGenders(s).
func ExpandGenders(selected []string) []string {
	out := dedupe(selected)

	has := make(map[string]bool, len(out))
	for _, g := range out {
		has[g] = true
	}

	male, female, unisex := string(domain.GenderMale), string(domain.GenderFemale), string(domain.GenderUnisex)

	switch {
	case has[male] || has[female]:
		if !has[unisex] {
			out = append(out, unisex)
		}
	case len(out) == 1 && has[unisex]:
		out = append(out, male, female)
	}

	return out
}

// ResolveQuery turns criteria into a storage query.
//
// A missing or negative MinPrice becomes 0. A missing or negative MaxPrice becomes
// catalogueMax rounded up to the next whole major unit, so an item priced exactly at
// the observed maximum is always included. Given prices are converted to minor units.
func ResolveQuery(c Criteria, catalogueMax int64, limit int) domain.CatalogueQuery {
	q := domain.CatalogueQuery{
		Styles:  dedupe(c.Styles),
		Sizes:   dedupe(c.Sizes),
		Genders: ExpandGenders(c.Genders),
		Limit:   limit,
	}

	if validPrice(c.MinPrice) {
		q.MinPrice = toMinor(*c.MinPrice)
	}

	if validPrice(c.MaxPrice) {
		q.MaxPrice = toMinor(*c.MaxPrice)
	} else {
		q.MaxPrice = CeilingCents(catalogueMax)
	}

	return q
}

// NeedsCeiling reports whether ResolveQuery will fall back to the catalogue maximum.
func NeedsCeiling(c Criteria) bool {
	return !validPrice(c.MaxPrice)
}

// CeilingCents rounds a minor-unit price up to a whole major unit, in minor units.
func CeilingCents(cents int64) int64 {
	if cents <= 0 {
		return 0
	}
	return ((cents + 99) / 100) * 100
}

func validPrice(p *int64) bool {
	return p != nil && *p >= 0
}

func toMinor(major int64) int64 {
	if major > maxMajorPrice {
		major = maxMajorPrice
	}
	return major * 100
}

// dedupe keeps the first occurrence of each non-empty value, preserving order.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
