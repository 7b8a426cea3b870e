package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stylelink/backend/internal/domain/style"
	"github.com/stylelink/backend/internal/infrastructure/persistence/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StyleRecordModel{}, &models.LoginRecordModel{}))
	return db
}

func TestStyleRepositoryFindAbsent(t *testing.T) {
	repo := NewStyleRepository(newTestDB(t))

	record, err := repo.FindByStyleIDs(context.Background(), "closet-1", "jdoe-:-REQ001")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestStyleRepositorySaveAndFind(t *testing.T) {
	repo := NewStyleRepository(newTestDB(t))
	ctx := context.Background()

	record, err := style.NewStyleRecord("closet-1", "jdoe-:-REQ001", "designer", "jdoe")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, record))
	assert.NotZero(t, record.ID)

	found, err := repo.FindByStyleIDs(ctx, "closet-1", "jdoe-:-REQ001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "designer", found.InternalOwner)
	assert.Equal(t, "jdoe", found.ExternalOwner)
}

func TestStyleRepositorySaveUpserts(t *testing.T) {
	db := newTestDB(t)
	repo := NewStyleRepository(db)
	ctx := context.Background()

	record, err := style.NewStyleRecord("closet-1", "jdoe-:-REQ001", "designer", "jdoe")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, record))

	// Re-publish of the same pair refreshes the row instead of adding one
	again, err := style.NewStyleRecord("closet-1", "jdoe-:-REQ001", "designer2", "jdoe2")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, again))

	var count int64
	require.NoError(t, db.Model(&models.StyleRecordModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	found, err := repo.FindByStyleIDs(ctx, "closet-1", "jdoe-:-REQ001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "designer2", found.InternalOwner)
}

func TestStyleRepositoryFindRecent(t *testing.T) {
	repo := NewStyleRepository(newTestDB(t))
	ctx := context.Background()

	for i, req := range []string{"REQ001", "REQ002", "REQ003"} {
		record, err := style.NewStyleRecord("closet-"+req, "jdoe-:-"+req, "designer", "jdoe")
		require.NoError(t, err)
		record.ModifiedAt = time.Now().Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Save(ctx, record))
	}

	records, err := repo.FindRecent(ctx, "designer", "jdoe", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "jdoe-:-REQ003", records[0].ExternalStyleID)
	assert.Equal(t, "jdoe-:-REQ002", records[1].ExternalStyleID)

	// Other owners see nothing
	records, err = repo.FindRecent(ctx, "someone", "else", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoginRecordRepository(t *testing.T) {
	repo := NewLoginRecordRepository(newTestDB(t))
	ctx := context.Background()

	found, err := repo.FindByUsers(ctx, "designer", "jdoe")
	require.NoError(t, err)
	assert.Nil(t, found)

	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordLogin(ctx, "designer", "jdoe", first))

	second := first.Add(24 * time.Hour)
	require.NoError(t, repo.RecordLogin(ctx, "designer", "jdoe", second))

	found, err = repo.FindByUsers(ctx, "designer", "jdoe")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.LoginTime.Equal(second))
}
