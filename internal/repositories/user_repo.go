package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gamestoreBack/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
        INSERT INTO users (name, email, password, role, created_at)
        VALUES (?, ?, ?, ?, ?)
    `
	user.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Role, user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
        SELECT id, name, email, password, role, created_at, updated_at
        FROM users
        WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	query := `
        SELECT id, name, email, password, role, created_at, updated_at
        FROM users
        WHERE email = ?
    `
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	return count > 0, err
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
        INSERT INTO sessions (user_id, role, refresh_token, expires_at)
        VALUES (?, ?, ?, ?)
    `
	_, err := r.DB.ExecContext(ctx, query,
		session.UserID, session.Role, session.RefreshToken, session.ExpiresAt,
	)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
        SELECT id, user_id, role, refresh_token, expires_at
        FROM sessions
        WHERE refresh_token = ?
    `
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.ID, &session.UserID, &session.Role, &session.RefreshToken, &session.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *UserRepository) DeleteSessionsForUser(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}
