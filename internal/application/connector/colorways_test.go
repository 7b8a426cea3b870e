package connector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylelink/backend/internal/domain/plm"
)

func TestMapColorwaysSkipsSentinelSlot(t *testing.T) {
	h := newHarness(t)

	internal := []InternalColorway{
		{Name: "Navy", ColorID: "C100", ColorName: "Dark Navy"},
		{Name: "Coral", ColorID: "C200", ColorName: "Bright Coral"},
	}
	// The design tool leaves the placeholder name in unassigned slots
	mappings := []plm.ColorwayMapping{
		{InternalColorwayName: "Drop here", ExternalColorwayName: "PLM Slot 1"},
		{InternalColorwayName: "Coral", ExternalColorwayName: "Coral PLM"},
	}

	payload, skipped := h.service.mapColorways(mappings, internal)
	require.Len(t, payload, 1)
	assert.Equal(t, "C200", payload[0].ColorNumber)

	require.Len(t, skipped, 1)
	assert.Equal(t, plm.SkipSentinelSlot, skipped[0].Reason)
	assert.Equal(t, "Drop here", skipped[0].Mapping.InternalColorwayName)
}

func TestMapColorwaysPLMColorwayNamedLikeSentinelIsKept(t *testing.T) {
	h := newHarness(t)

	// Only the design-tool side carries the placeholder; a PLM colorway
	// that happens to be named "Drop here" is a legitimate target.
	internal := []InternalColorway{{Name: "Navy", ColorID: "C100", ColorName: "Dark Navy"}}
	mappings := []plm.ColorwayMapping{
		{InternalColorwayName: "Navy", ExternalColorwayName: "Drop here", ExternalAssociationID: "A7"},
	}

	payload, skipped := h.service.mapColorways(mappings, internal)
	require.Len(t, payload, 1)
	assert.Empty(t, skipped)
	assert.Equal(t, "Drop here", payload[0].ColorwayName)
	assert.Equal(t, "A7", payload[0].AssociationID)
}

func TestMapColorwaysNewAssociationUsesInternalName(t *testing.T) {
	h := newHarness(t)

	internal := []InternalColorway{{Name: "Navy", ColorID: "C100", ColorName: "Dark Navy"}}
	mappings := []plm.ColorwayMapping{
		{InternalColorwayName: "Navy", ExternalColorwayName: "Whatever Slot"},
	}

	payload, _ := h.service.mapColorways(mappings, internal)
	require.Len(t, payload, 1)
	assert.Equal(t, "Navy", payload[0].ColorwayName)
	assert.Empty(t, payload[0].AssociationID)
}

func TestMapColorwaysExistingAssociationKeepsPLMName(t *testing.T) {
	h := newHarness(t)

	internal := []InternalColorway{{Name: "Navy", ColorID: "C100", ColorName: "Dark Navy"}}
	mappings := []plm.ColorwayMapping{
		{InternalColorwayName: "Navy", ExternalColorwayName: "PLM Midnight", ExternalAssociationID: "A1"},
	}

	payload, _ := h.service.mapColorways(mappings, internal)
	require.Len(t, payload, 1)
	assert.Equal(t, "PLM Midnight", payload[0].ColorwayName)
	assert.Equal(t, "A1", payload[0].AssociationID)
}

func TestMapColorwaysUnmatchedOmitted(t *testing.T) {
	h := newHarness(t)

	internal := []InternalColorway{{Name: "Navy", ColorID: "C100", ColorName: "Dark Navy"}}
	mappings := []plm.ColorwayMapping{
		{InternalColorwayName: "Ghost", ExternalColorwayName: "Slot"},
	}

	payload, skipped := h.service.mapColorways(mappings, internal)
	assert.Empty(t, payload)
	require.Len(t, skipped, 1)
	assert.Equal(t, plm.SkipNoNameMatch, skipped[0].Reason)
}

func TestMapColorwaysMisalignedListsFallBackToNameLookup(t *testing.T) {
	h := newHarness(t)

	// Mapping order differs from the internal list order; position is only
	// a fast path
	internal := []InternalColorway{
		{Name: "Coral", ColorID: "C200", ColorName: "Bright Coral"},
		{Name: "Navy", ColorID: "C100", ColorName: "Dark Navy"},
	}
	mappings := []plm.ColorwayMapping{
		{InternalColorwayName: "Navy", ExternalColorwayName: "Slot A"},
		{InternalColorwayName: "Coral", ExternalColorwayName: "Slot B"},
		{InternalColorwayName: "Navy", ExternalColorwayName: "Slot C"}, // beyond list bounds
	}

	payload, _ := h.service.mapColorways(mappings, internal)
	require.Len(t, payload, 3)
	assert.Equal(t, "C100", payload[0].ColorNumber)
	assert.Equal(t, "C200", payload[1].ColorNumber)
	assert.Equal(t, "C100", payload[2].ColorNumber)
}

func TestPublishPayloadNeverCarriesSentinel(t *testing.T) {
	h := newHarness(t)

	req := basePublishRequest()
	req.InternalColorways = []InternalColorway{
		{Name: "drop HERE", ColorID: "C999", ColorName: "Placeholder"},
	}
	req.ColorwayMappings = []plm.ColorwayMapping{
		{InternalColorwayName: "drop HERE", ExternalColorwayName: "PLM Slot"},
	}

	require.NoError(t, h.service.Publish(context.Background(), req))
	require.NotNil(t, h.client.publishedPayload)
	assert.Empty(t, h.client.publishedPayload.Colorways)
}
