package entitlement

import (
	"gamestoreBack/internal/catalog"
	"gamestoreBack/internal/models"
)

// Machine-readable reasons attached to blocked checkout lines.
const (
	ReasonAlreadyOwned        = "already-owned"
	ReasonMissingPrerequisite = "missing-prerequisite"
	ReasonUnresolvableItem    = "unresolvable-item"
)

// BlockedItem carries everything a caller needs to explain why a line cannot
// be purchased, including the prerequisite to surface for
// missing-prerequisite.
type BlockedItem struct {
	ItemID        string `json:"item_id"`
	Title         string `json:"title,omitempty"`
	Reason        string `json:"reason"`
	RequiredID    string `json:"required_id,omitempty"`
	RequiredTitle string `json:"required_title,omitempty"`
}

type Classification struct {
	Eligible []models.CatalogItem
	Blocked  []BlockedItem
}

// Classify splits candidate item ids into purchasable and blocked lines.
// Ownership always wins: an owned item is already-owned no matter its kind.
// Addon/demo/editor entries additionally require the parent game in the
// library. Unknown ids become unresolvable-item instead of failing the batch
// resolution itself.
//
// Callers must run this against a library fetched no earlier than the start
// of the current attempt; eligibility computed at add-to-cart time goes stale
// the moment a purchase completes elsewhere.
func Classify(itemIDs []string, lib Library, snap *catalog.Snapshot) Classification {
	var cls Classification
	for _, id := range itemIDs {
		item, ok := snap.Find(id)
		if !ok {
			cls.Blocked = append(cls.Blocked, BlockedItem{
				ItemID: id,
				Reason: ReasonUnresolvableItem,
			})
			continue
		}
		if lib.Owns(item.ID) {
			cls.Blocked = append(cls.Blocked, BlockedItem{
				ItemID: item.ID,
				Title:  item.Title,
				Reason: ReasonAlreadyOwned,
			})
			continue
		}
		if item.Kind.RequiresPrerequisite() {
			parent, found := snap.Prerequisite(item.ID)
			if !found {
				cls.Blocked = append(cls.Blocked, BlockedItem{
					ItemID:     item.ID,
					Title:      item.Title,
					Reason:     ReasonMissingPrerequisite,
					RequiredID: item.ParentID,
				})
				continue
			}
			if !lib.Owns(parent.ID) {
				cls.Blocked = append(cls.Blocked, BlockedItem{
					ItemID:        item.ID,
					Title:         item.Title,
					Reason:        ReasonMissingPrerequisite,
					RequiredID:    parent.ID,
					RequiredTitle: parent.Title,
				})
				continue
			}
		}
		cls.Eligible = append(cls.Eligible, item)
	}
	return cls
}
