package catalog

import "sort"

// SortBy is the listing sort criterion selected in the shop view.
type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortNewest    SortBy = "newest"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
)

func ParseSortBy(s string) SortBy {
	switch SortBy(s) {
	case SortNewest, SortPriceLow, SortPriceHigh:
		return SortBy(s)
	default:
		return SortFeatured
	}
}

// View derives the display list for the shop page: filter by category, then
// stable-sort by the chosen criterion so ties keep catalogue order. Pure;
// the input slice is never modified.
func View(in []Product, category Category, sortBy SortBy) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	default: // featured
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsBestseller && !out[j].IsBestseller
		})
	}

	return out
}
