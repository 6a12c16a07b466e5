package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jdjewellers/storefront-backend/models"
	"github.com/jdjewellers/storefront-backend/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenGenerator is the slice of TokenService the auth flow needs.
type TokenGenerator interface {
	Generate(userID, email, role string) (string, error)
}

type AuthService struct {
	userRepo repository.UserRepository
	tokens   TokenGenerator
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenGenerator) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password and a profile row.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) error {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("email already exists")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password")
	}

	user := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
	}
	profile := &models.Profile{
		ID:       uuid.New(),
		UserID:   user.ID,
		FullName: fullName,
	}

	if err := s.userRepo.Create(ctx, user, profile); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Login verifies credentials and returns a signed token. The role claim
// is "admin" only when an admin role record exists for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid email or password")
	}

	role := ""
	isAdmin, err := s.userRepo.HasRole(ctx, user.ID, models.RoleAdmin)
	if err != nil {
		return "", err
	}
	if isAdmin {
		role = models.RoleAdmin
	}

	return s.tokens.Generate(user.ID.String(), user.Email, role)
}

// IsAdmin checks the role record for the user id, the second half of
// the admin gate (a valid token alone is not enough).
func (s *AuthService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return false, fmt.Errorf("invalid user ID format")
	}
	return s.userRepo.HasRole(ctx, id, models.RoleAdmin)
}
