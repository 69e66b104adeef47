package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/pricing"
)

// Match applies a filter specification and a free-text search to an item
// sequence. Every clause must hold (AND across facets); inside one facet an
// item matches when it carries any of the selected values (OR). The result is
// an order-preserving subsequence of items.
func Match(items []models.CatalogItem, spec models.FilterSpec, search string) []models.CatalogItem {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.CatalogItem, 0, len(items))
	for _, it := range items {
		if !matchesSearch(it, search) {
			continue
		}
		if !intersects(it.Genre, spec.Genres) {
			continue
		}
		if !intersects(it.Features, spec.Features) {
			continue
		}
		if !matchesType(it, spec.Types) {
			continue
		}
		if !intersects(it.Platforms, spec.Platforms) {
			continue
		}
		if !matchesPrice(it, spec.Price) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it models.CatalogItem, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), search)
}

// intersects implements the OR semantics of one facet: an empty selection
// matches everything, otherwise any shared value suffices.
func intersects(have, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		for _, h := range have {
			if h == s {
				return true
			}
		}
	}
	return false
}

func matchesType(it models.CatalogItem, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if KindOf(s) == it.Kind {
			return true
		}
	}
	return false
}

var priceBounds = map[string]decimal.Decimal{
	models.PriceBucketUnder5:  decimal.NewFromInt(5),
	models.PriceBucketUnder10: decimal.NewFromInt(10),
	models.PriceBucketUnder20: decimal.NewFromInt(20),
	models.PriceBucketUnder50: decimal.NewFromInt(50),
}

func matchesPrice(it models.CatalogItem, bucket string) bool {
	if bucket == "" {
		return true
	}
	effective := pricing.Effective(it.Price, it.Discount, 0)
	if bucket == models.PriceBucketFree {
		return effective.IsZero()
	}
	bound, ok := priceBounds[bucket]
	if !ok {
		return true
	}
	return effective.IsPositive() && effective.LessThan(bound)
}
