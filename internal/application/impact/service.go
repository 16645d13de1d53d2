package impact

import (
	"context"
	"errors"
	"strings"
	"time"

	"tmf-backend/internal/domain"
	"tmf-backend/internal/pkg/validation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrLabelRequired = errors.New("label and impact_text are required")
	ErrRuleNotFound  = errors.New("impact rule not found")
)

// Service serves the public impact widgets: live donation stats, the
// amount-to-impact rules, and the fundraising goal. Loc sets the day
// boundary for TodayDonors; nil means UTC.
type Service struct {
	DB  *gorm.DB
	Loc *time.Location
}

// LiveStats aggregates donation totals for the public impact banner.
type LiveStats struct {
	TotalRaised float64 `json:"total_raised"`
	TotalDonors int64   `json:"total_donors"`
	TodayDonors int64   `json:"today_donors"`
}

func (s *Service) LiveStats(ctx context.Context) (*LiveStats, error) {
	var stats LiveStats
	db := s.DB.WithContext(ctx).Model(&domain.Donation{})

	if err := db.Session(&gorm.Session{}).Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalRaised).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Count(&stats.TotalDonors).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("created_at >= ?", s.startOfDay()).Count(&stats.TodayDonors).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// startOfDay returns midnight in the configured zone. A plain 24h truncate
// would pin the boundary to UTC, which is wrong for donors in other zones.
func (s *Service) startOfDay() time.Time {
	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// Rules lists all impact rules ordered by amount ascending.
func (s *Service) Rules(ctx context.Context) ([]domain.ImpactRule, error) {
	var rules []domain.ImpactRule
	if err := s.DB.WithContext(ctx).Order("amount").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// UpsertRule inserts or replaces the rule keyed by amount.
func (s *Service) UpsertRule(ctx context.Context, amount float64, label, impactText string) (*domain.ImpactRule, error) {
	if !validation.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}
	label = strings.TrimSpace(label)
	impactText = strings.TrimSpace(impactText)
	if label == "" || impactText == "" {
		return nil, ErrLabelRequired
	}

	rule := &domain.ImpactRule{Amount: amount, Label: label, ImpactText: impactText}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "amount"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "impact_text"}),
	}).Create(rule).Error
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteRule removes the rule keyed by amount.
func (s *Service) DeleteRule(ctx context.Context, amount float64) error {
	res := s.DB.WithContext(ctx).Where("amount = ?", amount).Delete(&domain.ImpactRule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// Goal returns the fundraising goal row, or a zero goal when none is set.
func (s *Service) Goal(ctx context.Context) (*domain.DonationGoal, error) {
	var goal domain.DonationGoal
	err := s.DB.WithContext(ctx).Order("created_at DESC").First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.DonationGoal{}, nil
		}
		return nil, err
	}
	return &goal, nil
}

// SetGoal updates the existing goal in place, creating it on first use.
func (s *Service) SetGoal(ctx context.Context, title string, target float64) (*domain.DonationGoal, error) {
	if target < 0 {
		return nil, ErrInvalidAmount
	}

	var goal domain.DonationGoal
	err := s.DB.WithContext(ctx).Order("created_at DESC").First(&goal).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		goal = domain.DonationGoal{Title: title, Target: target}
		if err := s.DB.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		goal.Title = title
		goal.Target = target
		if err := s.DB.WithContext(ctx).Save(&goal).Error; err != nil {
			return nil, err
		}
	}
	return &goal, nil
}
