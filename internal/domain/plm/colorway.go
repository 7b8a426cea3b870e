package plm

import "strings"

// SentinelColorwayName is the placeholder slot the design tool inserts for an
// unassigned colorway. Mappings carrying it are never published.
const SentinelColorwayName = "Drop here"

// IsSentinelColorway reports whether name is the unassigned-slot placeholder.
// The comparison is case-insensitive.
func IsSentinelColorway(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), SentinelColorwayName)
}

// SkipReason explains why a colorway mapping was left out of a publish
// payload. Skipped mappings are omitted silently on the wire; the reason is
// kept for logging.
type SkipReason string

const (
	// SkipSentinelSlot marks a mapping whose design-tool colorway is the
	// unassigned-slot placeholder.
	SkipSentinelSlot SkipReason = "sentinel_slot"
	// SkipNoNameMatch marks a mapping whose internal colorway name matches
	// none of the style's colorways.
	SkipNoNameMatch SkipReason = "no_name_match"
	// SkipUnmatchedAttachment marks an uploaded file matching no declared
	// asset slot.
	SkipUnmatchedAttachment SkipReason = "unmatched_attachment"
)

// ColorwayMapping pairs a design-tool colorway with the PLM colorway the user
// assigned it to.
type ColorwayMapping struct {
	// InternalColorwayName is the colorway name inside the design tool
	InternalColorwayName string
	// ExternalColorwayName is the PLM colorway name it was dropped onto
	ExternalColorwayName string
	// ExternalAssociationID is the PLM association id when the pair was
	// already linked by an earlier publish (empty for new pairs)
	ExternalAssociationID string
}

// ColorwayPayload is one reconciled colorway entry of the publish payload.
type ColorwayPayload struct {
	ColorNumber   string `json:"colorNo"`
	ColorName     string `json:"colorName"`
	ColorwayName  string `json:"colorwayName"`
	AssociationID string `json:"assocId,omitempty"`
}

// SkippedColorway records a mapping left out of the payload and why.
type SkippedColorway struct {
	Mapping ColorwayMapping
	Reason  SkipReason
}
