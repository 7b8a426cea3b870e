package connector

import (
	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
)

// mapColorways reconciles the user's colorway assignments into publishable
// entries. Mappings still holding the unassigned-slot placeholder on the
// design-tool side and mappings whose internal colorway cannot be found are
// omitted and returned with their skip reason; skips are logged, never
// published.
func (s *Service) mapColorways(mappings []plm.ColorwayMapping, internal []InternalColorway) ([]plm.ColorwayPayload, []plm.SkippedColorway) {
	payload := make([]plm.ColorwayPayload, 0, len(mappings))
	var skipped []plm.SkippedColorway

	for i, mapping := range mappings {
		if plm.IsSentinelColorway(mapping.InternalColorwayName) {
			skipped = append(skipped, s.skipColorway(mapping, plm.SkipSentinelSlot))
			continue
		}

		colorway, ok := matchInternalColorway(internal, i, mapping.InternalColorwayName)
		if !ok {
			skipped = append(skipped, s.skipColorway(mapping, plm.SkipNoNameMatch))
			continue
		}

		// New associations are published under the design tool's colorway
		// name; an existing association keeps the PLM-side name.
		name := mapping.InternalColorwayName
		if mapping.ExternalAssociationID != "" {
			name = mapping.ExternalColorwayName
		}

		payload = append(payload, plm.ColorwayPayload{
			ColorNumber:   colorway.ColorID,
			ColorName:     colorway.ColorName,
			ColorwayName:  name,
			AssociationID: mapping.ExternalAssociationID,
		})
	}
	return payload, skipped
}

// matchInternalColorway finds the internal colorway for a mapping. The name
// is authoritative; the position is only a fast path, bounds-checked so
// misaligned lists degrade to a lookup instead of an out-of-range access.
func matchInternalColorway(internal []InternalColorway, position int, name string) (InternalColorway, bool) {
	if position < len(internal) && internal[position].Name == name {
		return internal[position], true
	}
	for _, colorway := range internal {
		if colorway.Name == name {
			return colorway, true
		}
	}
	return InternalColorway{}, false
}

func (s *Service) skipColorway(mapping plm.ColorwayMapping, reason plm.SkipReason) plm.SkippedColorway {
	s.logger.Debug("Colorway mapping skipped",
		zap.String("internal", mapping.InternalColorwayName),
		zap.String("external", mapping.ExternalColorwayName),
		zap.String("reason", string(reason)))
	return plm.SkippedColorway{Mapping: mapping, Reason: reason}
}
