package plmclient

import (
	"strings"

	"github.com/stylelink/backend/internal/domain/plm"
)

// statusSuccess is the business status the PLM reports for accepted requests.
// Comparison is case-insensitive.
const statusSuccess = "SUCCESS"

// messageRecord is the PLM's business status block. Every response nests at
// least one of these; the transport status code says nothing about acceptance.
type messageRecord struct {
	Status      string `json:"status"`
	MessageID   string `json:"messageId"`
	MessageDesc string `json:"messageDesc"`
	Token       string `json:"token"`
}

// IsSuccess checks if the business status reports acceptance
func (m *messageRecord) IsSuccess() bool {
	return strings.EqualFold(m.Status, statusSuccess)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

type userRecord struct {
	UserName string `json:"userName"`
}

type loginResponse struct {
	Document struct {
		Message []messageRecord `json:"message"`
		User    []userRecord    `json:"user"`
	} `json:"document"`
}

// ---------------------------------------------------------------------------
// Search / Get
// ---------------------------------------------------------------------------

type attachmentRecord struct {
	AttachmentNumber string `json:"attachmentNo"`
	Location         string `json:"location"`
}

// colorwayRecord carries its own attachment list; the thumbnail is the entry
// marked with the colorway-image attachment number, not a flat field.
type colorwayRecord struct {
	ColorwayName string             `json:"colorwayName"`
	AssocID      string             `json:"assocId"`
	Attachments  []attachmentRecord `json:"attachment"`
}

// thumbnailLocation scans the colorway's attachments for the colorway-image
// marker. Empty when the colorway has no thumbnail.
func (r *colorwayRecord) thumbnailLocation() string {
	for _, att := range r.Attachments {
		if strings.EqualFold(att.AttachmentNumber, plm.AttachmentNumberColorImage) {
			return att.Location
		}
	}
	return ""
}

type fabricColorwayRecord struct {
	ColorNumber string `json:"colorNo"`
	ColorName   string `json:"colorName"`
}

type techSpecRecord struct {
	Owner           string                 `json:"owner"`
	RequestNo       string                 `json:"requestNo"`
	StyleName       string                 `json:"styleName"`
	Department      string                 `json:"department"`
	Brand           string                 `json:"brand"`
	Division        string                 `json:"division"`
	Attachments     []attachmentRecord     `json:"attachment"`
	Colorways       []colorwayRecord       `json:"colorway"`
	FabricColorways []fabricColorwayRecord `json:"fabricColorway"`
}

// ToDomain converts the wire record into the domain tech spec
func (r *techSpecRecord) ToDomain() plm.TechSpec {
	spec := plm.TechSpec{
		Owner:      r.Owner,
		RequestNo:  r.RequestNo,
		StyleName:  r.StyleName,
		Department: r.Department,
		Brand:      r.Brand,
		Division:   r.Division,
	}
	for _, att := range r.Attachments {
		spec.Attachments = append(spec.Attachments, plm.Attachment{
			AttachmentNumber: att.AttachmentNumber,
			Location:         att.Location,
		})
	}
	for _, cw := range r.Colorways {
		spec.Colorways = append(spec.Colorways, plm.Colorway{
			Name:              cw.ColorwayName,
			AssociationID:     cw.AssocID,
			ThumbnailLocation: cw.thumbnailLocation(),
		})
	}
	for _, fc := range r.FabricColorways {
		spec.FabricColorways = append(spec.FabricColorways, plm.FabricColorway{
			ColorNumber: fc.ColorNumber,
			ColorName:   fc.ColorName,
		})
	}
	return spec
}

type styleResponse struct {
	Document struct {
		Message  []messageRecord  `json:"message"`
		TechSpec []techSpecRecord `json:"techSpec"`
	} `json:"document"`
}

// ---------------------------------------------------------------------------
// Upload
// ---------------------------------------------------------------------------

// locationRecord is one accepted file in an upload response. Each location
// carries its own nested business status.
type locationRecord struct {
	OldFileName string `json:"oldFileName"`
	NewFileName string `json:"newFileName"`
	Messages    struct {
		Status  string          `json:"status"`
		Message []messageRecord `json:"message"`
	} `json:"messages"`
}

// IsSuccess checks if this file was accepted by the upload service
func (l *locationRecord) IsSuccess() bool {
	return strings.EqualFold(l.Messages.Status, statusSuccess)
}

type uploadResponse struct {
	Document struct {
		Location []locationRecord `json:"location"`
	} `json:"document"`
}

// ---------------------------------------------------------------------------
// Publish
// ---------------------------------------------------------------------------

// publishResponse nests the business status three levels deep:
// document.techSpec[0].quote[0].message[0].
type publishResponse struct {
	Document struct {
		TechSpec []struct {
			Quote []struct {
				Message []messageRecord `json:"message"`
			} `json:"quote"`
		} `json:"techSpec"`
	} `json:"document"`
}

// firstMessage digs out the nested status message, if present
func (r *publishResponse) firstMessage() (messageRecord, bool) {
	if len(r.Document.TechSpec) == 0 || len(r.Document.TechSpec[0].Quote) == 0 {
		return messageRecord{}, false
	}
	msgs := r.Document.TechSpec[0].Quote[0].Message
	if len(msgs) == 0 {
		return messageRecord{}, false
	}
	return msgs[0], true
}

// ---------------------------------------------------------------------------
// LOV
// ---------------------------------------------------------------------------

type lovEntryRecord struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type lovResponse struct {
	Document struct {
		Message []messageRecord  `json:"message"`
		LOV     []lovEntryRecord `json:"lov"`
	} `json:"document"`
}
