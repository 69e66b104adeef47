package services

import (
	"context"

	"gamestoreBack/internal/catalog"
	"gamestoreBack/internal/models"
)

// popularGenreMinTitles is the number of base games a genre needs before it
// counts as popular on the browse page.
const popularGenreMinTitles = 3

type CatalogService struct {
	GameRepo        GameSource
	DLCRepo         DLCSource
	DefaultPageSize int
}

// Snapshot fetches a fresh immutable catalog snapshot, games first then dlcs,
// in storage order.
func (s *CatalogService) Snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	games, err := s.GameRepo.GetAllGames(ctx)
	if err != nil {
		return nil, err
	}
	dlcs, err := s.DLCRepo.GetAllDLCs(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewSnapshot(games, dlcs), nil
}

// Browse runs the read path: filter, then paginate. When the submitted
// signature no longer matches the submitted filter the requested page is
// discarded and the result starts over at page 1.
func (s *CatalogService) Browse(ctx context.Context, req models.BrowseRequest) (models.BrowseResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.BrowseResponse{}, err
	}

	matched := catalog.Match(snap.Items(), req.Filter, req.Search)
	sig := catalog.Signature(req.Filter, req.Search)

	page := req.Page
	if req.Signature != "" && req.Signature != sig {
		page = 1
	}
	size := req.PageSize
	if size < 1 {
		size = s.DefaultPageSize
	}
	if size < 1 {
		size = catalog.DefaultPageSize
	}

	pg := catalog.Paginate(matched, size, page)
	return models.BrowseResponse{
		Items:      pg.Items,
		Page:       pg.Number,
		PageSize:   size,
		TotalPages: pg.TotalPages,
		TotalItems: pg.TotalItems,
		Signature:  sig,
	}, nil
}

// FreeItems is the free-games rail: the whole catalog narrowed to the free
// price bucket.
func (s *CatalogService) FreeItems(ctx context.Context) ([]models.CatalogItem, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Match(snap.Items(), models.FilterSpec{Price: models.PriceBucketFree}, ""), nil
}

func (s *CatalogService) PopularGenres(ctx context.Context) ([]models.GenreCount, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.PopularGenres(popularGenreMinTitles), nil
}

func (s *CatalogService) GetItem(ctx context.Context, id string) (models.CatalogItem, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.CatalogItem{}, err
	}
	item, ok := snap.Find(id)
	if !ok {
		return models.CatalogItem{}, ErrItemNotFound
	}
	return item, nil
}
