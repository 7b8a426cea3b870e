package style

import (
	"context"
	"time"
)

// ---------------------------------------------------------------------------
// StyleRecord Entity
// ---------------------------------------------------------------------------

// StyleRecord links a design-tool style to its counterpart in the PLM system.
// It is keyed by the (InternalStyleID, ExternalStyleID) pair: re-publishing an
// already linked style refreshes the record instead of creating a new one.
type StyleRecord struct {
	// ID is the surrogate database identifier (0 until persisted)
	ID uint
	// InternalStyleID is the style identifier inside the design tool
	InternalStyleID string
	// ExternalStyleID is the style identifier on the PLM side
	ExternalStyleID string
	// InternalOwner is the design-tool user who published the style
	InternalOwner string
	// ExternalOwner is the PLM account the style was published under
	ExternalOwner string
	// CreatedAt is when the link was first established
	CreatedAt time.Time
	// ModifiedAt is when the link was last refreshed by a publish
	ModifiedAt time.Time
}

// NewStyleRecord creates a style link for a completed publish.
func NewStyleRecord(internalStyleID, externalStyleID, internalOwner, externalOwner string) (*StyleRecord, error) {
	if internalStyleID == "" {
		return nil, ErrInvalidInternalStyleID
	}
	if externalStyleID == "" {
		return nil, ErrInvalidExternalStyleID
	}

	now := time.Now()
	return &StyleRecord{
		InternalStyleID: internalStyleID,
		ExternalStyleID: externalStyleID,
		InternalOwner:   internalOwner,
		ExternalOwner:   externalOwner,
		CreatedAt:       now,
		ModifiedAt:      now,
	}, nil
}

// Touch refreshes owners and the modification time after a re-publish.
func (r *StyleRecord) Touch(internalOwner, externalOwner string) {
	r.InternalOwner = internalOwner
	r.ExternalOwner = externalOwner
	r.ModifiedAt = time.Now()
}

// ---------------------------------------------------------------------------
// Repository Interface
// ---------------------------------------------------------------------------

// Repository defines persistence for style links.
type Repository interface {
	// FindByStyleIDs finds the link for an id pair. Returns (nil, nil) when
	// no link exists.
	FindByStyleIDs(ctx context.Context, internalStyleID, externalStyleID string) (*StyleRecord, error)

	// Save creates or updates a link. The (internal, external) id pair is
	// the upsert key.
	Save(ctx context.Context, record *StyleRecord) error

	// FindRecent returns the most recently modified links for an owner
	// pair, newest first.
	FindRecent(ctx context.Context, internalOwner, externalOwner string, limit int) ([]StyleRecord, error)
}
