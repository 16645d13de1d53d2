package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact message statuses (canonical set; an older revision used unread/read).
const (
	MessageNew        = "new"
	MessageInProgress = "in_progress"
	MessageResolved   = "resolved"
)

// ContactMessage is one public contact-form submission.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	Subject   *string   `gorm:"column:subject" json:"subject"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'new'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
