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

var ErrDLCNotFound = errors.New("dlc not found")

type DLCRepository struct {
	DB *sql.DB
}

func (r *DLCRepository) CreateDLC(ctx context.Context, dlc models.DLC) (models.DLC, error) {
	if dlc.ID == "" {
		dlc.ID = uuid.NewString()
	}
	dlc.CreatedAt = time.Now()
	query := `INSERT INTO dlcs (id, title, price, discount, type, game_id, genre, features, platforms, image, description, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query,
		dlc.ID, dlc.Title, dlc.Price, dlc.Discount, dlc.Type, nullString(dlc.GameID),
		encodeStringList(dlc.Genre), encodeStringList(dlc.Features), encodeStringList(dlc.Platforms),
		dlc.Image, dlc.Description, dlc.CreatedAt)
	if err != nil {
		return models.DLC{}, err
	}
	return dlc, nil
}

func (r *DLCRepository) GetAllDLCs(ctx context.Context) ([]models.DLC, error) {
	query := `SELECT id, title, price, discount, type, game_id, genre, features, platforms, image, description, created_at, updated_at
	          FROM dlcs ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dlcs []models.DLC
	for rows.Next() {
		dlc, err := scanDLC(rows)
		if err != nil {
			return nil, err
		}
		dlcs = append(dlcs, dlc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dlcs rows error: %w", err)
	}
	return dlcs, nil
}

func (r *DLCRepository) GetDLCByID(ctx context.Context, id string) (models.DLC, error) {
	query := `SELECT id, title, price, discount, type, game_id, genre, features, platforms, image, description, created_at, updated_at
	          FROM dlcs WHERE id = ?`
	row := r.DB.QueryRowContext(ctx, query, id)
	dlc, err := scanDLC(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DLC{}, ErrDLCNotFound
	}
	if err != nil {
		return models.DLC{}, err
	}
	return dlc, nil
}

func (r *DLCRepository) UpdateDLC(ctx context.Context, dlc models.DLC) (models.DLC, error) {
	query := `UPDATE dlcs SET title = ?, price = ?, discount = ?, type = ?, game_id = ?, genre = ?, features = ?, platforms = ?, image = ?, description = ?, updated_at = ?
	          WHERE id = ?`
	now := time.Now()
	res, err := r.DB.ExecContext(ctx, query,
		dlc.Title, dlc.Price, dlc.Discount, dlc.Type, nullString(dlc.GameID),
		encodeStringList(dlc.Genre), encodeStringList(dlc.Features), encodeStringList(dlc.Platforms),
		dlc.Image, dlc.Description, now, dlc.ID)
	if err != nil {
		return models.DLC{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.DLC{}, err
	}
	if affected == 0 {
		return models.DLC{}, ErrDLCNotFound
	}
	dlc.UpdatedAt = &now
	return dlc, nil
}

func (r *DLCRepository) DeleteDLC(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM dlcs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDLCNotFound
	}
	return nil
}

func scanDLC(row rowScanner) (models.DLC, error) {
	var dlc models.DLC
	var gameID, genre, features, platforms, image, description sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(&dlc.ID, &dlc.Title, &dlc.Price, &dlc.Discount, &dlc.Type, &gameID,
		&genre, &features, &platforms, &image, &description, &dlc.CreatedAt, &updatedAt)
	if err != nil {
		return models.DLC{}, err
	}
	dlc.GameID = gameID.String
	dlc.Genre = decodeStringList(genre, "genre", dlc.ID)
	dlc.Features = decodeStringList(features, "features", dlc.ID)
	dlc.Platforms = decodeStringList(platforms, "platforms", dlc.ID)
	dlc.Image = image.String
	dlc.Description = description.String
	if updatedAt.Valid {
		dlc.UpdatedAt = &updatedAt.Time
	}
	return dlc, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
