package dashboard

import (
	"context"

	"tmf-backend/internal/domain"

	"gorm.io/gorm"
)

// Service aggregates the admin dashboard's summary counters and recents.
type Service struct {
	DB *gorm.DB
}

// Summary is the dashboard landing payload.
type Summary struct {
	TotalDonations         int64                         `json:"total_donations"`
	TotalRaised            float64                       `json:"total_raised"`
	TotalVolunteers        int64                         `json:"total_volunteers"`
	PendingVolunteers      int64                         `json:"pending_volunteers"`
	NewMessages            int64                         `json:"new_messages"`
	PublishedBlogs         int64                         `json:"published_blogs"`
	PublishedAnnouncements int64                         `json:"published_announcements"`
	PublishedPrograms      int64                         `json:"published_programs"`
	PublishedInternships   int64                         `json:"published_internships"`
	RecentDonations        []domain.Donation             `json:"recent_donations"`
	RecentApplications     []domain.VolunteerApplication `json:"recent_applications"`
}

// Summary builds counts plus the five most recent donations and volunteer
// applications.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	db := s.DB.WithContext(ctx)

	if err := db.Model(&domain.Donation{}).Count(&out.TotalDonations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Donation{}).Select("COALESCE(SUM(amount), 0)").Scan(&out.TotalRaised).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.VolunteerApplication{}).Count(&out.TotalVolunteers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.VolunteerApplication{}).Where("status = ?", domain.VolunteerPending).Count(&out.PendingVolunteers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.ContactMessage{}).Where("status = ?", domain.MessageNew).Count(&out.NewMessages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Blog{}).Where("status = ?", domain.StatusPublished).Count(&out.PublishedBlogs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Announcement{}).Where("status = ?", domain.StatusPublished).Count(&out.PublishedAnnouncements).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Program{}).Where("status = ?", domain.StatusPublished).Count(&out.PublishedPrograms).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Internship{}).Where("status = ?", domain.StatusPublished).Count(&out.PublishedInternships).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at DESC").Limit(5).Find(&out.RecentDonations).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at DESC").Limit(5).Find(&out.RecentApplications).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
