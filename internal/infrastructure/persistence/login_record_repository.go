package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stylelink/backend/internal/domain/style"
	"github.com/stylelink/backend/internal/infrastructure/persistence/models"
)

// LoginRecordRepository is the GORM implementation of style.LoginRecordRepository
type LoginRecordRepository struct {
	db *gorm.DB
}

// NewLoginRecordRepository creates a new login record repository
func NewLoginRecordRepository(db *gorm.DB) *LoginRecordRepository {
	return &LoginRecordRepository{db: db}
}

// RecordLogin upserts the login time for a user pair
func (r *LoginRecordRepository) RecordLogin(ctx context.Context, internalUser, externalUser string, at time.Time) error {
	model := &models.LoginRecordModel{
		InternalUser: internalUser,
		ExternalUser: externalUser,
		LoginTime:    at,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "internal_user"}, {Name: "external_user"}},
			DoUpdates: clause.AssignmentColumns([]string{"login_time"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("persistence: failed to record login: %w", err)
	}
	return nil
}

// FindByUsers returns the record for a user pair, (nil, nil) when absent
func (r *LoginRecordRepository) FindByUsers(ctx context.Context, internalUser, externalUser string) (*style.LoginRecord, error) {
	var model models.LoginRecordModel
	err := r.db.WithContext(ctx).
		Where("internal_user = ? AND external_user = ?", internalUser, externalUser).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persistence: failed to find login record: %w", err)
	}
	return model.ToDomain(), nil
}

var _ style.LoginRecordRepository = (*LoginRecordRepository)(nil)
