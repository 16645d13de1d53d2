package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Publish lifecycle for all content kinds: two states, nothing else.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Announcement is a site-wide notice. Visibility controls which public feed
// shows it (default "home").
type Announcement struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	Message    string    `gorm:"column:message;not null" json:"message"`
	Type       *string   `gorm:"column:type" json:"type"`
	Visibility string    `gorm:"column:visibility;type:varchar(20);not null;default:'home'" json:"visibility"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Blog is a long-form post.
type Blog struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"column:title;not null" json:"title"`
	Category        string    `gorm:"column:category;not null" json:"category"`
	Content         string    `gorm:"column:content;type:text;not null" json:"content"`
	CoverImage      *string   `gorm:"column:cover_image" json:"cover_image"`
	MetaDescription *string   `gorm:"column:meta_description" json:"meta_description"`
	Status          string    `gorm:"column:status;type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Program is an ongoing community program shown on the public programs page.
type Program struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Category    string    `gorm:"column:category;not null" json:"category"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Program) TableName() string {
	return "programs"
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Internship is an open internship listing.
type Internship struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Location    *string   `gorm:"column:location" json:"location"`
	Duration    *string   `gorm:"column:duration" json:"duration"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Internship) TableName() string {
	return "internships"
}

func (i *Internship) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
