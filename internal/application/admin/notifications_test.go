package admin

import (
	"context"
	"testing"

	"tmf-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAdminDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.AdminLog{}, &domain.AdminNotification{}))
	return db
}

func TestNotifications_ReadLifecycle(t *testing.T) {
	db := setupAdminDB(t)
	svc := &NotificationsService{DB: db}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&domain.AdminNotification{
			Type: "donation", Title: "New Donation", Message: "New donation",
		}).Error)
	}

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.NoError(t, svc.MarkRead(ctx, rows[0].ID))
	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.MarkAllRead(ctx))
	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotifications_MarkReadUnknownID(t *testing.T) {
	svc := &NotificationsService{DB: setupAdminDB(t)}

	err := svc.MarkRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestLogs_RecordAndList(t *testing.T) {
	db := setupAdminDB(t)
	svc := &LogsService{DB: db, Log: zerolog.Nop()}
	ctx := context.Background()

	svc.Record(ctx, "u1", "root@tmf.org", "create", "blog", "b1", map[string]interface{}{"title": "Hello"})
	svc.Record(ctx, "u1", "", "delete", "blog", "", nil)

	rows, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var created domain.AdminLog
	require.NoError(t, db.First(&created, "action = ?", "create").Error)
	require.NotNil(t, created.ActorEmail)
	assert.Equal(t, "root@tmf.org", *created.ActorEmail)
	assert.Contains(t, string(created.Details), "Hello")

	var deleted domain.AdminLog
	require.NoError(t, db.First(&deleted, "action = ?", "delete").Error)
	assert.Nil(t, deleted.ActorEmail)
	assert.Nil(t, deleted.EntityID)
}

func TestLogs_RecordSkipsBlankAction(t *testing.T) {
	db := setupAdminDB(t)
	svc := &LogsService{DB: db, Log: zerolog.Nop()}

	svc.Record(context.Background(), "u1", "", "  ", "blog", "", nil)

	var count int64
	require.NoError(t, db.Model(&domain.AdminLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
