package style

import (
	"context"
	"time"
)

// LoginRecord tracks the last successful PLM login per user pair.
type LoginRecord struct {
	ID           uint
	InternalUser string
	ExternalUser string
	LoginTime    time.Time
}

// LoginRecordRepository persists last-login tracking.
type LoginRecordRepository interface {
	// RecordLogin upserts the login time for a user pair
	RecordLogin(ctx context.Context, internalUser, externalUser string, at time.Time) error

	// FindByUsers returns the record for a user pair, (nil, nil) when absent
	FindByUsers(ctx context.Context, internalUser, externalUser string) (*LoginRecord, error)
}
