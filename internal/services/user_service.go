package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gamestoreBack/internal/models"
	"gamestoreBack/internal/repositories"
	"gamestoreBack/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService struct {
	UserRepo   *repositories.UserRepository
	Tokens     *utils.Manager
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AuthResponse struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (AuthResponse, error) {
	exists, err := s.UserRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return AuthResponse{}, err
	}
	if exists {
		return AuthResponse{}, repositories.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}
	user.Password = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return AuthResponse{}, err
	}
	return s.issueTokens(ctx, created)
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (AuthResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user)
}

func (s *UserService) SignOut(ctx context.Context, userID int) error {
	return s.UserRepo.DeleteSessionsForUser(ctx, userID)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (AuthResponse, error) {
	access, err := s.Tokens.NewJWT(user.ID, user.Role, s.AccessTTL)
	if err != nil {
		return AuthResponse{}, err
	}
	refresh := s.Tokens.NewRefreshToken()

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	}
	if err := s.UserRepo.CreateSession(ctx, session); err != nil {
		return AuthResponse{}, err
	}

	user.Password = ""
	return AuthResponse{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
