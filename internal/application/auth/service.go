package auth

import (
	"context"
	"errors"
	"strings"

	"tmf-backend/internal/domain"
	"tmf-backend/internal/pkg/constants"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoRole             = errors.New("account has no role assigned")
)

// Service authenticates admin accounts against the local credential store.
type Service struct {
	DB *gorm.DB
}

// Identity is the authenticated principal placed in the session.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Login verifies credentials and resolves the account's role. Unknown email
// and wrong password return the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user domain.AdminUser
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := s.roleFor(ctx, user.UserID.String())
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: user.UserID.String(), Email: user.Email, Role: role}, nil
}

// Verify re-resolves the identity behind a session, picking up role changes.
func (s *Service) Verify(ctx context.Context, userID string) (*Identity, error) {
	var user domain.AdminUser
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	role, err := s.roleFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Identity{UserID: user.UserID.String(), Email: user.Email, Role: role}, nil
}

func (s *Service) roleFor(ctx context.Context, userID string) (string, error) {
	var role domain.UserRole
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return constants.RoleNone, nil
		}
		return "", err
	}
	return role.RoleName, nil
}
