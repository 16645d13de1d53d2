package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminUser is a back-office account. Public visitors never get one.
type AdminUser struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Email        string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// UserRole is the one-row-per-user role assignment, upserted on conflict.
type UserRole struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	RoleName string    `gorm:"column:role_name;type:varchar(20);not null" json:"role_name"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// AdminLog is a best-effort audit row. Writes from services never fail their
// caller.
type AdminLog struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ActorUserID string         `gorm:"column:actor_user_id;not null" json:"actor_user_id"`
	ActorEmail  *string        `gorm:"column:actor_email" json:"actor_email"`
	Action      string         `gorm:"column:action;not null" json:"action"`
	Entity      string         `gorm:"column:entity;not null" json:"entity"`
	EntityID    *string        `gorm:"column:entity_id" json:"entity_id"`
	Details     datatypes.JSON `gorm:"column:details" json:"details"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}

func (l *AdminLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// AdminNotification feeds the bell icon in the admin dashboard.
type AdminNotification struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	Read      bool      `gorm:"column:read;not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminNotification) TableName() string {
	return "admin_notifications"
}

func (n *AdminNotification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
