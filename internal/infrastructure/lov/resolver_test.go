package lov

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelink/backend/internal/domain/plm"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, plm.LOVKeyBrand, "B1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, plm.LOVKeyBrand, "B1", "Brand One"))

	value, ok, err := store.Get(ctx, plm.LOVKeyBrand, "B1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Brand One", value)

	// Same code under another key is a distinct entry
	_, ok, err = store.Get(ctx, plm.LOVKeyDivision, "B1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverInvokesLookupOnce(t *testing.T) {
	resolver := NewResolver(NewMemoryStore(), nil)
	ctx := context.Background()

	var calls int32
	lookup := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "Womenswear", nil
	}

	for i := 0; i < 3; i++ {
		value, err := resolver.Resolve(ctx, plm.LOVKeyDepartment, "D1", lookup)
		require.NoError(t, err)
		assert.Equal(t, "Womenswear", value)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResolverEmptyCode(t *testing.T) {
	resolver := NewResolver(NewMemoryStore(), nil)

	value, err := resolver.Resolve(context.Background(), plm.LOVKeyBrand, "", func(context.Context) (string, error) {
		t.Fatal("lookup must not run for empty codes")
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestResolverLookupError(t *testing.T) {
	resolver := NewResolver(NewMemoryStore(), nil)

	_, err := resolver.Resolve(context.Background(), plm.LOVKeyBrand, "B1", func(context.Context) (string, error) {
		return "", errors.New("plm unavailable")
	})
	assert.Error(t, err)

	// The failure is not cached
	value, err := resolver.Resolve(context.Background(), plm.LOVKeyBrand, "B1", func(context.Context) (string, error) {
		return "Brand One", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Brand One", value)
}

func TestResolverConcurrentAccess(t *testing.T) {
	resolver := NewResolver(NewMemoryStore(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := resolver.Resolve(ctx, plm.LOVKeyDivision, "V1", func(context.Context) (string, error) {
				return "Outerwear", nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "Outerwear", value)
		}()
	}
	wg.Wait()
}

type failingStore struct{}

func (failingStore) Get(context.Context, plm.LOVKey, string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func (failingStore) Set(context.Context, plm.LOVKey, string, string) error {
	return errors.New("store down")
}

func TestResolverDegradesOnStoreFailure(t *testing.T) {
	resolver := NewResolver(failingStore{}, nil)

	value, err := resolver.Resolve(context.Background(), plm.LOVKeyBrand, "B1", func(context.Context) (string, error) {
		return "Brand One", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Brand One", value)
}
