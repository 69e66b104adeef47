package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gamestoreBack/internal/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository struct {
	DB *sql.DB
}

func (r *GameRepository) CreateGame(ctx context.Context, game models.Game) (models.Game, error) {
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	game.CreatedAt = time.Now()
	query := `INSERT INTO games (id, title, price, discount, type, genre, features, platforms, image, developer, publisher, description, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query,
		game.ID, game.Title, game.Price, game.Discount, game.Type,
		encodeStringList(game.Genre), encodeStringList(game.Features), encodeStringList(game.Platforms),
		game.Image, game.Developer, game.Publisher, game.Description, game.CreatedAt)
	if err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (r *GameRepository) GetAllGames(ctx context.Context) ([]models.Game, error) {
	query := `SELECT id, title, price, discount, type, genre, features, platforms, image, developer, publisher, description, created_at, updated_at
	          FROM games ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("games rows error: %w", err)
	}
	return games, nil
}

func (r *GameRepository) GetGameByID(ctx context.Context, id string) (models.Game, error) {
	query := `SELECT id, title, price, discount, type, genre, features, platforms, image, developer, publisher, description, created_at, updated_at
	          FROM games WHERE id = ?`
	row := r.DB.QueryRowContext(ctx, query, id)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Game{}, ErrGameNotFound
	}
	if err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (r *GameRepository) UpdateGame(ctx context.Context, game models.Game) (models.Game, error) {
	query := `UPDATE games SET title = ?, price = ?, discount = ?, type = ?, genre = ?, features = ?, platforms = ?, image = ?, developer = ?, publisher = ?, description = ?, updated_at = ?
	          WHERE id = ?`
	now := time.Now()
	res, err := r.DB.ExecContext(ctx, query,
		game.Title, game.Price, game.Discount, game.Type,
		encodeStringList(game.Genre), encodeStringList(game.Features), encodeStringList(game.Platforms),
		game.Image, game.Developer, game.Publisher, game.Description, now, game.ID)
	if err != nil {
		return models.Game{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Game{}, err
	}
	if affected == 0 {
		return models.Game{}, ErrGameNotFound
	}
	game.UpdatedAt = &now
	return game, nil
}

func (r *GameRepository) DeleteGame(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGameNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (models.Game, error) {
	var game models.Game
	var genre, features, platforms sql.NullString
	var image, developer, publisher, description sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(&game.ID, &game.Title, &game.Price, &game.Discount, &game.Type,
		&genre, &features, &platforms, &image, &developer, &publisher, &description,
		&game.CreatedAt, &updatedAt)
	if err != nil {
		return models.Game{}, err
	}
	game.Genre = decodeStringList(genre, "genre", game.ID)
	game.Features = decodeStringList(features, "features", game.ID)
	game.Platforms = decodeStringList(platforms, "platforms", game.ID)
	game.Image = image.String
	game.Developer = developer.String
	game.Publisher = publisher.String
	game.Description = description.String
	if updatedAt.Valid {
		game.UpdatedAt = &updatedAt.Time
	}
	return game, nil
}
