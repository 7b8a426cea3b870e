package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stylelink/backend/internal/domain/style"
	"github.com/stylelink/backend/internal/infrastructure/persistence/models"
)

// StyleRepository is the GORM implementation of style.Repository
type StyleRepository struct {
	db *gorm.DB
}

// NewStyleRepository creates a new style repository
func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{db: db}
}

// FindByStyleIDs finds the link for an id pair. Returns (nil, nil) when no
// link exists.
func (r *StyleRepository) FindByStyleIDs(ctx context.Context, internalStyleID, externalStyleID string) (*style.StyleRecord, error) {
	var model models.StyleRecordModel
	err := r.db.WithContext(ctx).
		Where("internal_style_id = ? AND external_style_id = ?", internalStyleID, externalStyleID).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("persistence: failed to find style record: %w", err)
	}
	return model.ToDomain(), nil
}

// Save creates or updates a link, upserting on the id pair
func (r *StyleRepository) Save(ctx context.Context, record *style.StyleRecord) error {
	model := models.StyleRecordModelFromDomain(record)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "internal_style_id"}, {Name: "external_style_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"internal_owner", "external_owner", "modified_at",
			}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("persistence: failed to save style record: %w", err)
	}
	record.ID = model.ID
	return nil
}

// FindRecent returns the most recently modified links for an owner pair,
// newest first
func (r *StyleRepository) FindRecent(ctx context.Context, internalOwner, externalOwner string, limit int) ([]style.StyleRecord, error) {
	var modelList []models.StyleRecordModel
	err := r.db.WithContext(ctx).
		Where("internal_owner = ? AND external_owner = ?", internalOwner, externalOwner).
		Order("modified_at DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("persistence: failed to list recent style records: %w", err)
	}

	records := make([]style.StyleRecord, 0, len(modelList))
	for i := range modelList {
		records = append(records, *modelList[i].ToDomain())
	}
	return records, nil
}

var _ style.Repository = (*StyleRepository)(nil)
