package services

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/models"
	"catalog-service/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer is the part of TokenService the auth service depends on.
type TokenIssuer interface {
	GenerateTokenPair(userID uint, email string) (*TokenPair, error)
	ValidateToken(tokenStr, expectedType string) (jwt.MapClaims, error)
}

type AuthService struct {
	userRepo     repository.UserRepo
	tokenService TokenIssuer
}

func NewAuthService(ur repository.UserRepo, ts TokenIssuer) *AuthService {
	return &AuthService{userRepo: ur, tokenService: ts}
}

// Login exchanges email and password for a token pair. Unknown emails
// and wrong passwords produce the same error; an inactive account is
// reported separately once the credentials check out.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return s.tokenService.GenerateTokenPair(user.ID, user.Email)
}

// Refresh validates a refresh token, re-resolves the user and issues a
// fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenService.ValidateToken(refreshToken, "refresh")
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	userID, err := UserIDFromClaims(claims)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	return s.tokenService.GenerateTokenPair(user.ID, user.Email)
}

// Register creates an active, non-staff account with a hashed password.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:       req.Email,
		Username:    req.Username,
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashed),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActive:    true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return user, nil
}
