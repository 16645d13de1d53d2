package admin

import (
	"context"
	"errors"

	"tmf-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationsService feeds the dashboard bell icon.
type NotificationsService struct {
	DB *gorm.DB
}

// List returns the newest 50 notifications.
func (s *NotificationsService) List(ctx context.Context) ([]domain.AdminNotification, error) {
	var rows []domain.AdminNotification
	err := s.DB.WithContext(ctx).Order("created_at DESC").Limit(50).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationsService) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&domain.AdminNotification{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

// MarkRead flags one notification as read.
func (s *NotificationsService) MarkRead(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&domain.AdminNotification{}).Where("id = ?", id).Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification as read.
func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.DB.WithContext(ctx).Model(&domain.AdminNotification{}).Where("read = ?", false).Update("read", true).Error
}
