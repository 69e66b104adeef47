package catalog

import (
	"testing"

	"gamestoreBack/internal/models"
)

func TestNewSnapshotOrdersGamesBeforeDLCs(t *testing.T) {
	games := []models.Game{
		{ID: "g1", Title: "Starfall"},
		{ID: "g2", Title: "Quiet Farm"},
	}
	dlcs := []models.DLC{
		{ID: "d1", Title: "Crimson Tide", Type: "addon", GameID: "g1"},
	}
	snap := NewSnapshot(games, dlcs)
	assertIDs(t, snap.Items(), "g1", "g2", "d1")
}

func TestNewSnapshotDropsDuplicateAndEmptyIDs(t *testing.T) {
	games := []models.Game{
		{ID: "g1", Title: "First"},
		{ID: "g1", Title: "Shadowed"},
		{ID: "", Title: "No id"},
	}
	snap := NewSnapshot(games, nil)
	if len(snap.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(snap.Items()))
	}
	item, ok := snap.Find("g1")
	if !ok || item.Title != "First" {
		t.Fatalf("expected first occurrence to win, got %+v", item)
	}
}

func TestPrerequisite(t *testing.T) {
	games := []models.Game{{ID: "g1", Title: "Starfall"}}
	dlcs := []models.DLC{
		{ID: "d1", Type: "addon", GameID: "g1"},
		{ID: "d2", Type: "addon", GameID: "missing"},
		{ID: "d3", Type: "edition"},
	}
	snap := NewSnapshot(games, dlcs)

	parent, ok := snap.Prerequisite("d1")
	if !ok || parent.ID != "g1" {
		t.Fatalf("expected parent g1, got %+v ok=%t", parent, ok)
	}
	if _, ok := snap.Prerequisite("d2"); ok {
		t.Fatal("dangling parent reference should not resolve")
	}
	// Editions are standalone purchases.
	if _, ok := snap.Prerequisite("d3"); ok {
		t.Fatal("edition should not report a prerequisite")
	}
	if _, ok := snap.Prerequisite("g1"); ok {
		t.Fatal("base game should not report a prerequisite")
	}
}

func TestPopularGenresCountsBaseGamesOnly(t *testing.T) {
	games := []models.Game{
		{ID: "g1", Genre: []string{"Action", "RPG"}},
		{ID: "g2", Genre: []string{"Action"}},
		{ID: "g3", Genre: []string{"Action", "RPG"}},
	}
	dlcs := []models.DLC{
		{ID: "d1", Type: "addon", GameID: "g1", Genre: []string{"RPG"}},
	}
	snap := NewSnapshot(games, dlcs)

	got := snap.PopularGenres(3)
	if len(got) != 1 || got[0].Genre != "Action" || got[0].Count != 3 {
		t.Fatalf("unexpected popular genres: %+v", got)
	}
}

func TestKindOfNormalization(t *testing.T) {
	cases := []struct {
		raw  string
		want models.ItemKind
	}{
		{"", models.KindBaseGame},
		{"Game", models.KindBaseGame},
		{"ADDON", models.KindAddon},
		{"add-on", models.KindAddon},
		{"dlc", models.KindAddon},
		{"demo", models.KindDemo},
		{"editor", models.KindEditor},
		{" Edition ", models.KindEdition},
	}
	for _, c := range cases {
		if got := KindOf(c.raw); got != c.want {
			t.Fatalf("KindOf(%q) = %s, want %s", c.raw, got, c.want)
		}
	}
}
