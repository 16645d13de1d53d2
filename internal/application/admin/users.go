package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"tmf-backend/internal/domain"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/constants"
	"tmf-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidEmail = errors.New("a valid email is required")
	ErrWeakPassword = errors.New("password must be at least 8 characters with a letter, a number and a special character")
	ErrInvalidRole  = errors.New("role must be super_admin, editor or manager")
	ErrEmailTaken   = errors.New("an account with this email already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrSelfDemotion = errors.New("you cannot change your own role")
	ErrSelfDeletion = errors.New("you cannot delete your own account")
)

// UsersService manages admin accounts and their role assignments. Role
// changes and deletions revoke the target's live sessions.
type UsersService struct {
	DB    *gorm.DB
	Redis *redis.Client
	Log   zerolog.Logger
}

// UserWithRole is the admin-list row: account plus effective role.
type UserWithRole struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func validRole(role string) bool {
	switch role {
	case constants.SuperAdmin, constants.Editor, constants.Manager:
		return true
	}
	return false
}

// Create provisions an admin account with a role in one transaction.
func (s *UsersService) Create(ctx context.Context, email, password, role string) (*domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validation.IsValidPassword(password) {
		return nil, ErrWeakPassword
	}
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	user := &domain.AdminUser{Email: email, PasswordHash: string(hash)}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&domain.UserRole{UserID: user.UserID, RoleName: role}).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all admin accounts with their roles, "none" when unassigned.
func (s *UsersService) List(ctx context.Context) ([]UserWithRole, error) {
	var rows []UserWithRole
	err := s.DB.WithContext(ctx).
		Table("admin_users").
		Select("admin_users.user_id, admin_users.email, COALESCE(user_roles.role_name, ?) AS role, admin_users.created_at", constants.RoleNone).
		Joins("LEFT JOIN user_roles ON user_roles.user_id = admin_users.user_id").
		Order("admin_users.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateRole upserts a user's role and revokes their live sessions so the
// new role takes effect on next login. Actors cannot change their own role.
func (s *UsersService) UpdateRole(ctx context.Context, actorID string, userID uuid.UUID, role string) error {
	if !validRole(role) {
		return ErrInvalidRole
	}
	if actorID == userID.String() {
		return ErrSelfDemotion
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&domain.AdminUser{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role_name"}),
	}).Create(&domain.UserRole{UserID: userID, RoleName: role}).Error
	if err != nil {
		return err
	}

	s.revokeSessions(ctx, userID)
	return nil
}

// Delete removes an account, its role row, and its live sessions. Actors
// cannot delete themselves.
func (s *UsersService) Delete(ctx context.Context, actorID string, userID uuid.UUID) error {
	if actorID == userID.String() {
		return ErrSelfDeletion
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.UserRole{}).Error; err != nil {
			return err
		}
		res := tx.Where("user_id = ?", userID).Delete(&domain.AdminUser{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.revokeSessions(ctx, userID)
	return nil
}

func (s *UsersService) revokeSessions(ctx context.Context, userID uuid.UUID) {
	if s.Redis == nil {
		return
	}
	if err := middleware.DestroyUserSessions(ctx, s.Redis, userID.String()); err != nil {
		s.Log.Error().Err(err).Str("user_id", userID.String()).Msg("revoke user sessions")
	}
}
