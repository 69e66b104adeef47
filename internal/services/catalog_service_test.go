package services

import (
	"context"
	"fmt"
	"testing"

	"gamestoreBack/internal/models"
)

type stubGameSource struct {
	games []models.Game
}

func (s *stubGameSource) GetAllGames(ctx context.Context) ([]models.Game, error) {
	return s.games, nil
}

type stubDLCSource struct {
	dlcs []models.DLC
}

func (s *stubDLCSource) GetAllDLCs(ctx context.Context) ([]models.DLC, error) {
	return s.dlcs, nil
}

func browseCatalogService() *CatalogService {
	games := make([]models.Game, 0, 30)
	for i := 0; i < 30; i++ {
		g := models.Game{
			ID:    fmt.Sprintf("g%02d", i),
			Title: fmt.Sprintf("Game %02d", i),
			Genre: []string{"Action"},
		}
		if i%2 == 0 {
			g.Genre = append(g.Genre, "RPG")
		}
		games = append(games, g)
	}
	return &CatalogService{
		GameRepo:        &stubGameSource{games: games},
		DLCRepo:         &stubDLCSource{},
		DefaultPageSize: 10,
	}
}

func TestBrowseKeepsPageWhileFilterUnchanged(t *testing.T) {
	svc := browseCatalogService()
	filter := models.FilterSpec{Genres: []string{"Action"}}

	first, err := svc.Browse(context.Background(), models.BrowseRequest{Filter: filter, Page: 1})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if first.Signature == "" {
		t.Fatal("browse response must echo a signature")
	}
	if first.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", first.TotalPages)
	}

	third, err := svc.Browse(context.Background(), models.BrowseRequest{
		Filter: filter, Page: 3, Signature: first.Signature,
	})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if third.Page != 3 {
		t.Fatalf("matching signature must keep the requested page, got %d", third.Page)
	}
	if third.Items[0].ID != "g20" {
		t.Fatalf("unexpected first item on page 3: %s", third.Items[0].ID)
	}
}

func TestBrowseResetsToFirstPageOnFilterChange(t *testing.T) {
	svc := browseCatalogService()
	action := models.FilterSpec{Genres: []string{"Action"}}
	rpg := models.FilterSpec{Genres: []string{"RPG"}}

	first, err := svc.Browse(context.Background(), models.BrowseRequest{Filter: action, Page: 1})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}

	// The client was on page 3 of the Action results, then changed the facet
	// selection; the echoed signature is now stale and the page starts over.
	reset, err := svc.Browse(context.Background(), models.BrowseRequest{
		Filter: rpg, Page: 3, Signature: first.Signature,
	})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if reset.Page != 1 {
		t.Fatalf("stale signature must reset to page 1, got %d", reset.Page)
	}
	if reset.Items[0].ID != "g00" {
		t.Fatalf("expected the first RPG item, got %s", reset.Items[0].ID)
	}
	if reset.Signature == first.Signature {
		t.Fatal("response must carry the new filter's signature")
	}
}

func TestBrowseSearchChangeResetsPage(t *testing.T) {
	svc := browseCatalogService()

	first, err := svc.Browse(context.Background(), models.BrowseRequest{Page: 1})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	reset, err := svc.Browse(context.Background(), models.BrowseRequest{
		Search: "Game 0", Page: 3, Signature: first.Signature,
	})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if reset.Page != 1 {
		t.Fatalf("search change must reset to page 1, got %d", reset.Page)
	}
}
