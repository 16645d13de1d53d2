package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Volunteer application statuses. Any status may follow any other; admins set
// them freely.
const (
	VolunteerPending  = "Pending"
	VolunteerApproved = "Approved"
	VolunteerRejected = "Rejected"
)

// VolunteerApplication is one public volunteer signup.
type VolunteerApplication struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone"`
	City      *string   `gorm:"column:city" json:"city"`
	Interest  *string   `gorm:"column:interest" json:"interest"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (VolunteerApplication) TableName() string {
	return "volunteer_applications"
}

func (v *VolunteerApplication) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
