package plm

import (
	"fmt"
	"strconv"
	"strings"
)

// Attachment number vocabulary. The PLM distinguishes attachments by a fixed
// "attachment number" slot rather than by file name.
const (
	// AttachmentNumberProjectFile marks the design-tool project archive.
	AttachmentNumberProjectFile = "CLOPROJECT"
	// AttachmentNumberThumbnail marks the style thumbnail image.
	AttachmentNumberThumbnail = "CLOTHUMBNAIL"
	// AttachmentNumberColorImage marks a colorway thumbnail image.
	AttachmentNumberColorImage = "CLOCOLORIMAGE"
	// RenderAttachmentPrefix prefixes the monotonically numbered render
	// sequence: CLOIMAGE_1, CLOIMAGE_2, ...
	RenderAttachmentPrefix = "CLOIMAGE_"
)

// RenderAttachmentNumber formats the attachment number for render sequence seq.
func RenderAttachmentNumber(seq int) string {
	return fmt.Sprintf("%s%d", RenderAttachmentPrefix, seq)
}

// ParseRenderSequence extracts the sequence number from a render attachment
// number. Returns false for non-render attachment numbers.
func ParseRenderSequence(attachmentNo string) (int, bool) {
	if !strings.HasPrefix(attachmentNo, RenderAttachmentPrefix) {
		return 0, false
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(attachmentNo, RenderAttachmentPrefix))
	if err != nil {
		return 0, false
	}
	return seq, true
}

// LastRenderSequence returns the highest render sequence number present in
// attachments, or 0 when none carry one. New renders are numbered after it.
func LastRenderSequence(attachments []Attachment) int {
	last := 0
	for _, att := range attachments {
		if seq, ok := ParseRenderSequence(att.AttachmentNumber); ok && seq > last {
			last = seq
		}
	}
	return last
}
