package models

// ItemKind is the explicit discriminant of a catalog entry.
type ItemKind string

const (
	KindBaseGame ItemKind = "base-game"
	KindEdition  ItemKind = "edition"
	KindAddon    ItemKind = "addon"
	KindDemo     ItemKind = "demo"
	KindEditor   ItemKind = "editor"
)

// RequiresPrerequisite reports whether items of this kind may only be
// purchased once the parent game is owned.
func (k ItemKind) RequiresPrerequisite() bool {
	return k == KindAddon || k == KindDemo || k == KindEditor
}

// CatalogItem is the flattened browse/checkout view of a Game or DLC.
// ParentID is set only for addon/demo/editor entries.
type CatalogItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     string   `json:"price"`
	Discount  int      `json:"discount"`
	Kind      ItemKind `json:"kind"`
	Genre     []string `json:"genre"`
	Features  []string `json:"features"`
	Platforms []string `json:"platforms"`
	ParentID  string   `json:"parent_id,omitempty"`
	Image     string   `json:"image,omitempty"`
}
