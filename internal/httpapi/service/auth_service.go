package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"jokehub/internal/apperr"
	"jokehub/internal/auth"
	"jokehub/internal/config"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)

// dummyHash is compared against when the username does not exist, so login
// takes roughly the same time either way (timing-attack mitigation).
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

type AuthService interface {
	Register(ctx context.Context, username, name, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	ValidateToken(tokenString string) (userID int64, username string, err error)
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password. Username and
// email must both be free.
func (s *authService) Register(ctx context.Context, username, name, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperr.Validation("username", "username must not be empty")
	}
	if name == "" {
		return nil, apperr.Validation("name", "name must not be empty")
	}
	if email == "" {
		return nil, apperr.Validation("email", "email must not be empty")
	}
	if len(password) < 8 {
		return nil, apperr.Validation("password", "password must be at least 8 characters")
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperr.Conflict("username already in use")
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already in use")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: &username,
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperr.Storage(err)
	}
	return user, nil
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		auth.VerifyPassword(dummyHash, password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, user)
	if err != nil {
		return "", "", nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", "", nil, apperr.Storage(err)
	}

	return accessToken, refreshToken, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	username := ""
	if user.Username != nil {
		username = *user.Username
	}
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": username,
		"exp":      time.Now().Add(s.accessTokenTTL).Unix(),
		"iat":      time.Now().Unix(),
		"type":     "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(ctx context.Context, user *models.User) (string, error) {
	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return "", apperr.Storage(err)
	}

	return refreshToken.Token, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
func (s *authService) RefreshAccessToken(ctx context.Context, refreshTokenString string) (string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(ctx, refreshTokenString)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidToken
		}
		return "", apperr.Storage(err)
	}
	if time.Now().After(refreshToken.ExpiresAt) {
		return "", ErrExpiredToken
	}

	user, err := s.userRepo.FindByID(ctx, refreshToken.UserID)
	if err != nil {
		return "", ErrInvalidToken
	}

	return s.generateAccessToken(user)
}

// ValidateToken parses and verifies an access token, returning the caller's
// identity claims.
func (s *authService) ValidateToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	// JSON numbers decode as float64
	idVal, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	username, _ := claims["username"].(string)
	return int64(idVal), username, nil
}
