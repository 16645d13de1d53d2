package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate job states.
const (
	JobPending = "pending"
	JobSent    = "sent"
	JobFailed  = "failed"
)

// Certificate records an issued donation certificate so the verify page can
// confirm authenticity. The certificate id ("CERT-<millis>") is the primary
// key; the PDF itself is never stored.
type Certificate struct {
	CertificateID string     `gorm:"column:certificate_id;primaryKey" json:"certificate_id"`
	DonationID    *uuid.UUID `gorm:"column:donation_id;type:uuid" json:"donation_id"`
	Name          string     `gorm:"column:name;not null" json:"name"`
	Email         string     `gorm:"column:email;not null" json:"email"`
	Amount        float64    `gorm:"column:amount;not null" json:"amount"`
	VerifyURL     string     `gorm:"column:verify_url;not null" json:"verify_url"`
	IssuedAt      time.Time  `gorm:"column:issued_at;autoCreateTime" json:"issued_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// CertificateJob is the outbox row linking a persisted donation to the
// certificate email that still has to go out. The worker claims due pending
// jobs, sends, and marks them sent; failures back off and retry.
type CertificateJob struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	DonationID    *uuid.UUID `gorm:"column:donation_id;type:uuid" json:"donation_id"`
	Name          string     `gorm:"column:name;not null" json:"name"`
	Email         string     `gorm:"column:email;not null" json:"email"`
	Amount        float64    `gorm:"column:amount;not null" json:"amount"`
	CertificateID *string    `gorm:"column:certificate_id" json:"certificate_id"`
	Status        string     `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	Attempts      int        `gorm:"column:attempts;not null;default:0" json:"attempts"`
	LastError     *string    `gorm:"column:last_error" json:"last_error"`
	NextAttemptAt time.Time  `gorm:"column:next_attempt_at;not null" json:"next_attempt_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CertificateJob) TableName() string {
	return "certificate_jobs"
}

func (j *CertificateJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.NextAttemptAt.IsZero() {
		j.NextAttemptAt = time.Now()
	}
	return nil
}
