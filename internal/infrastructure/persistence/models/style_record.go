package models

import (
	"time"

	"github.com/stylelink/backend/internal/domain/style"
)

// StyleRecordModel is the GORM model for style links
type StyleRecordModel struct {
	ID              uint      `gorm:"primaryKey"`
	InternalStyleID string    `gorm:"column:internal_style_id;not null;uniqueIndex:idx_styles_pair"`
	ExternalStyleID string    `gorm:"column:external_style_id;not null;uniqueIndex:idx_styles_pair"`
	InternalOwner   string    `gorm:"column:internal_owner;index"`
	ExternalOwner   string    `gorm:"column:external_owner;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	ModifiedAt      time.Time `gorm:"column:modified_at"`
}

// TableName specifies the table name
func (StyleRecordModel) TableName() string {
	return "styles"
}

// ToDomain converts the model to a domain entity
func (m *StyleRecordModel) ToDomain() *style.StyleRecord {
	return &style.StyleRecord{
		ID:              m.ID,
		InternalStyleID: m.InternalStyleID,
		ExternalStyleID: m.ExternalStyleID,
		InternalOwner:   m.InternalOwner,
		ExternalOwner:   m.ExternalOwner,
		CreatedAt:       m.CreatedAt,
		ModifiedAt:      m.ModifiedAt,
	}
}

// StyleRecordModelFromDomain converts a domain entity to the model
func StyleRecordModelFromDomain(record *style.StyleRecord) *StyleRecordModel {
	return &StyleRecordModel{
		ID:              record.ID,
		InternalStyleID: record.InternalStyleID,
		ExternalStyleID: record.ExternalStyleID,
		InternalOwner:   record.InternalOwner,
		ExternalOwner:   record.ExternalOwner,
		CreatedAt:       record.CreatedAt,
		ModifiedAt:      record.ModifiedAt,
	}
}
