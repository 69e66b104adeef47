package services

import (
	"context"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/repositories"
)

type GameService struct {
	GameRepo *repositories.GameRepository
}

func (s *GameService) CreateGame(ctx context.Context, game models.Game) (models.Game, error) {
	return s.GameRepo.CreateGame(ctx, game)
}

func (s *GameService) GetGames(ctx context.Context) ([]models.Game, error) {
	return s.GameRepo.GetAllGames(ctx)
}

func (s *GameService) GetGameByID(ctx context.Context, id string) (models.Game, error) {
	return s.GameRepo.GetGameByID(ctx, id)
}

func (s *GameService) UpdateGame(ctx context.Context, game models.Game) (models.Game, error) {
	return s.GameRepo.UpdateGame(ctx, game)
}

func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	return s.GameRepo.DeleteGame(ctx, id)
}
