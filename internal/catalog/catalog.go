// Package catalog holds the pure read path of the store: an immutable
// snapshot index over games and dlcs, the facet filter and the paginator.
// Everything here takes inputs as parameters and returns new values, so all
// of it is safe to call concurrently.
package catalog

import (
	"strings"

	"gamestoreBack/internal/models"
)

// Snapshot is an immutable, ordered index over the catalog. Games come first,
// dlcs after, both in storage order; that order is what every browse result
// preserves.
type Snapshot struct {
	items []models.CatalogItem
	byID  map[string]int
}

func NewSnapshot(games []models.Game, dlcs []models.DLC) *Snapshot {
	s := &Snapshot{
		items: make([]models.CatalogItem, 0, len(games)+len(dlcs)),
		byID:  make(map[string]int, len(games)+len(dlcs)),
	}
	for _, g := range games {
		s.add(models.CatalogItem{
			ID:        g.ID,
			Title:     g.Title,
			Price:     g.Price,
			Discount:  g.Discount,
			Kind:      KindOf(g.Type),
			Genre:     g.Genre,
			Features:  g.Features,
			Platforms: g.Platforms,
			Image:     g.Image,
		})
	}
	for _, d := range dlcs {
		item := models.CatalogItem{
			ID:        d.ID,
			Title:     d.Title,
			Price:     d.Price,
			Discount:  d.Discount,
			Kind:      KindOf(d.Type),
			Genre:     d.Genre,
			Features:  d.Features,
			Platforms: d.Platforms,
			Image:     d.Image,
		}
		if item.Kind.RequiresPrerequisite() {
			item.ParentID = d.GameID
		}
		s.add(item)
	}
	return s
}

func (s *Snapshot) add(item models.CatalogItem) {
	if item.ID == "" {
		return
	}
	if _, exists := s.byID[item.ID]; exists {
		return
	}
	s.byID[item.ID] = len(s.items)
	s.items = append(s.items, item)
}

// Items returns the full ordered item sequence. Callers must treat the slice
// as read-only.
func (s *Snapshot) Items() []models.CatalogItem {
	return s.items
}

// Find returns the item with the given id, reporting absence instead of
// failing.
func (s *Snapshot) Find(id string) (models.CatalogItem, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return models.CatalogItem{}, false
	}
	return s.items[idx], true
}

// Prerequisite resolves the parent game an addon/demo/editor depends on.
// Items without a prerequisite, and dangling parent references, report false.
func (s *Snapshot) Prerequisite(itemID string) (models.CatalogItem, bool) {
	item, ok := s.Find(itemID)
	if !ok || !item.Kind.RequiresPrerequisite() || item.ParentID == "" {
		return models.CatalogItem{}, false
	}
	return s.Find(item.ParentID)
}

// PopularGenres counts genre tags across base games only and returns the tags
// carried by at least minCount titles, in first-seen order.
func (s *Snapshot) PopularGenres(minCount int) []models.GenreCount {
	counts := make(map[string]int)
	var order []string
	for _, it := range s.items {
		if it.Kind != models.KindBaseGame {
			continue
		}
		for _, g := range it.Genre {
			if counts[g] == 0 {
				order = append(order, g)
			}
			counts[g]++
		}
	}
	var out []models.GenreCount
	for _, g := range order {
		if counts[g] >= minCount {
			out = append(out, models.GenreCount{Genre: g, Count: counts[g]})
		}
	}
	return out
}

// KindOf normalizes a raw admin-entered type string to its discriminant.
// Unknown or empty values mean a base game.
func KindOf(raw string) models.ItemKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "edition":
		return models.KindEdition
	case "addon", "add-on", "dlc":
		return models.KindAddon
	case "demo":
		return models.KindDemo
	case "editor":
		return models.KindEditor
	default:
		return models.KindBaseGame
	}
}
