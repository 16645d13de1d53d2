package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donation is one donor submission. Rows are immutable after insert; admins
// only read them.
type Donation struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Email         string    `gorm:"column:email;not null" json:"email"`
	Phone         *string   `gorm:"column:phone" json:"phone"`
	Amount        float64   `gorm:"column:amount;not null;check:amount > 0" json:"amount"`
	Type          string    `gorm:"column:type;type:varchar(20);not null;default:'one-time'" json:"type"`
	PaymentMethod string    `gorm:"column:payment_method;type:varchar(50)" json:"payment_method"`
	Anonymous     bool      `gorm:"column:anonymous;not null;default:false" json:"anonymous"`
	TaxBenefit    bool      `gorm:"column:tax_benefit;not null;default:false" json:"tax_benefit"`
	PAN           *string   `gorm:"column:pan" json:"pan"`
	Address       *string   `gorm:"column:address" json:"address"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string {
	return "donations"
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DonationGoal is the single fundraising target row shown on the public site.
type DonationGoal struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Target    float64   `gorm:"column:target;not null;default:0" json:"target"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DonationGoal) TableName() string {
	return "donation_goals"
}

func (g *DonationGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// ImpactRule maps a donation amount to a human-readable impact line
// ("₹500 plants 5 trees"). Upserted by amount.
type ImpactRule struct {
	Amount     float64   `gorm:"column:amount;primaryKey" json:"amount"`
	Label      string    `gorm:"column:label;not null" json:"label"`
	ImpactText string    `gorm:"column:impact_text;not null" json:"impact_text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ImpactRule) TableName() string {
	return "impact_rules"
}
