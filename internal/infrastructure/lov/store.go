package lov

import (
	"context"

	"github.com/stylelink/backend/internal/domain/plm"
)

// Store holds resolved LOV display values. Entries live for the process
// lifetime: LOV lists change on PLM releases, not during operation.
type Store interface {
	// Get returns the cached display value for a code, if present
	Get(ctx context.Context, key plm.LOVKey, code string) (string, bool, error)

	// Set caches the display value for a code
	Set(ctx context.Context, key plm.LOVKey, code, value string) error
}
