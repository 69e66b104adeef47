package catalog

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"gamestoreBack/internal/models"
)

const DefaultPageSize = 20

// Page is a deterministic slice of a matched result set.
type Page struct {
	Items      []models.CatalogItem
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices items into the requested page. The page number clamps into
// [1, TotalPages]; an empty result set is a valid terminal state with zero
// pages and page number 1.
func Paginate(items []models.CatalogItem, pageSize, pageNumber int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if pageNumber < 1 {
		pageNumber = 1
	}
	if totalPages > 0 && pageNumber > totalPages {
		pageNumber = totalPages
	}
	if totalPages == 0 {
		return Page{Items: []models.CatalogItem{}, Number: 1, TotalPages: 0, TotalItems: 0}
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{
		Items:      items[start:end],
		Number:     pageNumber,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Signature fingerprints a filter specification plus search text. A page
// number is only meaningful under the filter it was computed for, so browse
// requests echo the signature back and a mismatch resets them to page 1.
// Facet value order does not change the signature.
func Signature(spec models.FilterSpec, search string) string {
	h := fnv.New64a()
	writeFacet := func(name string, values []string) {
		sorted := append([]string(nil), values...)
		sort.Strings(sorted)
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(strings.Join(sorted, "\x1f")))
		h.Write([]byte{0})
	}
	writeFacet("genre", spec.Genres)
	writeFacet("features", spec.Features)
	writeFacet("type", spec.Types)
	writeFacet("platforms", spec.Platforms)
	h.Write([]byte(spec.Price))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(search))))
	return fmt.Sprintf("%016x", h.Sum64())
}
