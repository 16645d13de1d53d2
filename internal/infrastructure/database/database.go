package database

import (
	"tmf-backend/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB from DSN (Supabase/Postgres pooler URL).
// PreferSimpleProtocol disables prepared statement caching to avoid 42P05
// ("prepared statement already exists") when using connection poolers
// (PgBouncer, Supabase, Render).
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

// AutoMigrate runs migrations for all tables the backend owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Donation{},
		&domain.DonationGoal{},
		&domain.ImpactRule{},
		&domain.Certificate{},
		&domain.CertificateJob{},
		&domain.VolunteerApplication{},
		&domain.ContactMessage{},
		&domain.Announcement{},
		&domain.Blog{},
		&domain.Program{},
		&domain.Internship{},
		&domain.AdminUser{},
		&domain.UserRole{},
		&domain.AdminLog{},
		&domain.AdminNotification{},
	)
}
