package style

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyleRecord(t *testing.T) {
	record, err := NewStyleRecord("closet-123", "jdoe-:-REQ001", "designer", "jdoe")
	require.NoError(t, err)

	assert.Equal(t, "closet-123", record.InternalStyleID)
	assert.Equal(t, "jdoe-:-REQ001", record.ExternalStyleID)
	assert.Equal(t, "designer", record.InternalOwner)
	assert.Equal(t, "jdoe", record.ExternalOwner)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, record.CreatedAt, record.ModifiedAt)
}

func TestNewStyleRecordValidation(t *testing.T) {
	_, err := NewStyleRecord("", "ext", "a", "b")
	assert.ErrorIs(t, err, ErrInvalidInternalStyleID)

	_, err = NewStyleRecord("int", "", "a", "b")
	assert.ErrorIs(t, err, ErrInvalidExternalStyleID)
}

func TestStyleRecordTouch(t *testing.T) {
	record, err := NewStyleRecord("closet-123", "jdoe-:-REQ001", "designer", "jdoe")
	require.NoError(t, err)

	created := record.CreatedAt
	time.Sleep(time.Millisecond)
	record.Touch("designer2", "jdoe2")

	assert.Equal(t, "designer2", record.InternalOwner)
	assert.Equal(t, "jdoe2", record.ExternalOwner)
	assert.Equal(t, created, record.CreatedAt)
	assert.True(t, record.ModifiedAt.After(created))
}
