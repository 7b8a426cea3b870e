package lov

import (
	"context"

	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
)

// LookupFunc fetches the display value for a code from the PLM.
type LookupFunc func(ctx context.Context) (string, error)

// Resolver memoizes LOV code resolution. Concurrent misses on the same code
// may each invoke the lookup; last writer wins and the values are identical.
type Resolver struct {
	store  Store
	logger *zap.Logger
}

// NewResolver creates a resolver over the given store
func NewResolver(store Store, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, logger: logger}
}

// Resolve returns the display value for a code, consulting the cache first.
// Empty codes resolve to themselves without a lookup. Cache failures degrade
// to a direct lookup rather than failing the read.
func (r *Resolver) Resolve(ctx context.Context, key plm.LOVKey, code string, lookup LookupFunc) (string, error) {
	if code == "" {
		return "", nil
	}

	value, ok, err := r.store.Get(ctx, key, code)
	if err != nil {
		r.logger.Warn("LOV cache read failed",
			zap.String("key", string(key)),
			zap.String("code", code),
			zap.Error(err))
	} else if ok {
		return value, nil
	}

	value, err = lookup(ctx)
	if err != nil {
		return "", err
	}

	if err := r.store.Set(ctx, key, code, value); err != nil {
		r.logger.Warn("LOV cache write failed",
			zap.String("key", string(key)),
			zap.String("code", code),
			zap.Error(err))
	}
	return value, nil
}
