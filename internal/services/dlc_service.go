package services

import (
	"context"

	"gamestoreBack/internal/catalog"
	"gamestoreBack/internal/models"
	"gamestoreBack/internal/repositories"
)

type DLCService struct {
	DLCRepo  *repositories.DLCRepository
	GameRepo *repositories.GameRepository
}

// CreateDLC stores an add-on row. Kinds that depend on a base game (addon,
// demo, editor) must name an existing parent game; a dependent entry without
// one could never pass the purchase prerequisite check.
func (s *DLCService) CreateDLC(ctx context.Context, dlc models.DLC) (models.DLC, error) {
	if err := s.checkParent(ctx, dlc); err != nil {
		return models.DLC{}, err
	}
	return s.DLCRepo.CreateDLC(ctx, dlc)
}

func (s *DLCService) GetDLCs(ctx context.Context) ([]models.DLC, error) {
	return s.DLCRepo.GetAllDLCs(ctx)
}

func (s *DLCService) GetDLCByID(ctx context.Context, id string) (models.DLC, error) {
	return s.DLCRepo.GetDLCByID(ctx, id)
}

func (s *DLCService) UpdateDLC(ctx context.Context, dlc models.DLC) (models.DLC, error) {
	if err := s.checkParent(ctx, dlc); err != nil {
		return models.DLC{}, err
	}
	return s.DLCRepo.UpdateDLC(ctx, dlc)
}

func (s *DLCService) DeleteDLC(ctx context.Context, id string) error {
	return s.DLCRepo.DeleteDLC(ctx, id)
}

func (s *DLCService) checkParent(ctx context.Context, dlc models.DLC) error {
	if catalog.KindOf(dlc.Type).RequiresPrerequisite() && dlc.GameID == "" {
		return ErrMissingParentGame
	}
	if dlc.GameID != "" {
		if _, err := s.GameRepo.GetGameByID(ctx, dlc.GameID); err != nil {
			return err
		}
	}
	return nil
}
