package models

import (
	"time"

	"github.com/stylelink/backend/internal/domain/style"
)

// LoginRecordModel is the GORM model for last-login tracking
type LoginRecordModel struct {
	ID           uint      `gorm:"primaryKey"`
	InternalUser string    `gorm:"column:internal_user;not null;uniqueIndex:idx_login_records_pair"`
	ExternalUser string    `gorm:"column:external_user;not null;uniqueIndex:idx_login_records_pair"`
	LoginTime    time.Time `gorm:"column:login_time"`
}

// TableName specifies the table name
func (LoginRecordModel) TableName() string {
	return "login_records"
}

// ToDomain converts the model to a domain entity
func (m *LoginRecordModel) ToDomain() *style.LoginRecord {
	return &style.LoginRecord{
		ID:           m.ID,
		InternalUser: m.InternalUser,
		ExternalUser: m.ExternalUser,
		LoginTime:    m.LoginTime,
	}
}
