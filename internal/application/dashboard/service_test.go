package dashboard

import (
	"context"
	"testing"

	"tmf-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDashboardTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Donation{},
		&domain.VolunteerApplication{},
		&domain.ContactMessage{},
		&domain.Blog{},
		&domain.Announcement{},
		&domain.Program{},
		&domain.Internship{},
	))
	return &Service{DB: db}, db
}

func TestSummary_Empty(t *testing.T) {
	svc, _ := setupDashboardTest(t)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.TotalDonations)
	assert.Equal(t, float64(0), sum.TotalRaised)
	assert.Empty(t, sum.RecentDonations)
}

func TestSummary_CountsAndRecents(t *testing.T) {
	svc, db := setupDashboardTest(t)

	for i := 0; i < 7; i++ {
		d := domain.Donation{Name: "Donor", Email: "d@example.com", Amount: 100, Type: "one-time"}
		require.NoError(t, db.Create(&d).Error)
	}
	require.NoError(t, db.Create(&domain.VolunteerApplication{Name: "V", Email: "v@example.com", Status: domain.VolunteerPending}).Error)
	require.NoError(t, db.Create(&domain.VolunteerApplication{Name: "W", Email: "w@example.com", Status: domain.VolunteerApproved}).Error)
	require.NoError(t, db.Create(&domain.ContactMessage{Name: "M", Email: "m@example.com", Message: "hi", Status: domain.MessageNew}).Error)
	require.NoError(t, db.Create(&domain.Blog{Title: "Live", Content: "x", Status: domain.StatusPublished}).Error)
	require.NoError(t, db.Create(&domain.Blog{Title: "Draft", Content: "x", Status: domain.StatusDraft}).Error)
	require.NoError(t, db.Create(&domain.Announcement{Title: "Camp", Message: "x", Visibility: "home", Status: domain.StatusPublished}).Error)
	require.NoError(t, db.Create(&domain.Announcement{Title: "Pending", Message: "x", Visibility: "home", Status: domain.StatusDraft}).Error)
	require.NoError(t, db.Create(&domain.Program{Title: "Food drive", Description: "x", Status: domain.StatusPublished}).Error)
	require.NoError(t, db.Create(&domain.Internship{Title: "Field intern", Description: "x", Status: domain.StatusPublished}).Error)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), sum.TotalDonations)
	assert.Equal(t, float64(700), sum.TotalRaised)
	assert.Equal(t, int64(2), sum.TotalVolunteers)
	assert.Equal(t, int64(1), sum.PendingVolunteers)
	assert.Equal(t, int64(1), sum.NewMessages)
	assert.Equal(t, int64(1), sum.PublishedBlogs)
	assert.Equal(t, int64(1), sum.PublishedAnnouncements)
	assert.Equal(t, int64(1), sum.PublishedPrograms)
	assert.Equal(t, int64(1), sum.PublishedInternships)
	assert.Len(t, sum.RecentDonations, 5)
	assert.Len(t, sum.RecentApplications, 2)
}
