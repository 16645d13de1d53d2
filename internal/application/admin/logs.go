package admin

import (
	"context"
	"encoding/json"
	"strings"

	"tmf-backend/internal/domain"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LogsService records and lists the admin audit trail. Writes are
// best-effort: a failed audit insert never fails the admin action itself.
type LogsService struct {
	DB  *gorm.DB
	Log zerolog.Logger
}

// Record appends an audit row. details may be nil.
func (s *LogsService) Record(ctx context.Context, actorID, actorEmail, action, entity, entityID string, details map[string]interface{}) {
	if strings.TrimSpace(action) == "" || strings.TrimSpace(entity) == "" {
		return
	}

	row := &domain.AdminLog{
		ActorUserID: actorID,
		Action:      action,
		Entity:      entity,
	}
	if actorEmail != "" {
		row.ActorEmail = &actorEmail
	}
	if entityID != "" {
		row.EntityID = &entityID
	}
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			row.Details = datatypes.JSON(b)
		}
	}

	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		s.Log.Error().Err(err).Str("action", action).Str("entity", entity).Msg("write admin log")
	}
}

// List returns the most recent audit rows, capped at limit (default 100).
func (s *LogsService) List(ctx context.Context, limit int) ([]domain.AdminLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []domain.AdminLog
	err := s.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
