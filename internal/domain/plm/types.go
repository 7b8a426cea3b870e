package plm

import "context"

// ---------------------------------------------------------------------------
// PLM Wire Entities
// ---------------------------------------------------------------------------

// LoginResult is the usable outcome of a PLM login.
type LoginResult struct {
	// Token authenticates every subsequent PLM call
	Token string
	// UserName is the PLM account display name
	UserName string
}

// Attachment is a file already attached to a tech spec on the PLM side.
type Attachment struct {
	// AttachmentNumber is the PLM slot (CLOPROJECT, CLOTHUMBNAIL, CLOIMAGE_n, ...)
	AttachmentNumber string `json:"attachmentNo"`
	// Location is the server-side file name used to build download URLs
	Location string `json:"location"`
}

// FabricColorway carries the color identity paired with a colorway by list
// position in the tech spec.
type FabricColorway struct {
	ColorNumber string `json:"colorNo"`
	ColorName   string `json:"colorName"`
}

// Colorway is one colorway of a tech spec as the PLM reports it.
type Colorway struct {
	// Name is the PLM colorway name
	Name string `json:"colorwayName"`
	// AssociationID is set once a design-tool colorway has been linked to
	// this colorway by a previous publish
	AssociationID string `json:"assocId"`
	// ThumbnailLocation is the server-side file name of the colorway image
	ThumbnailLocation string `json:"location"`
}

// TechSpec is a PLM tech spec (one garment style) as returned by the search
// and get endpoints.
type TechSpec struct {
	Owner     string `json:"owner"`
	RequestNo string `json:"requestNo"`
	StyleName string `json:"styleName"`

	// Raw LOV codes; display values are resolved separately
	Department string `json:"department"`
	Brand      string `json:"brand"`
	Division   string `json:"division"`

	Attachments     []Attachment     `json:"attachments"`
	Colorways       []Colorway       `json:"colorways"`
	FabricColorways []FabricColorway `json:"fabricColorways"`
}

// ProjectFileAttachment returns the attachment holding the project archive.
func (t *TechSpec) ProjectFileAttachment() (Attachment, bool) {
	return t.findAttachment(AttachmentNumberProjectFile)
}

// ThumbnailAttachment returns the attachment holding the style thumbnail.
func (t *TechSpec) ThumbnailAttachment() (Attachment, bool) {
	return t.findAttachment(AttachmentNumberThumbnail)
}

func (t *TechSpec) findAttachment(attachmentNo string) (Attachment, bool) {
	for _, att := range t.Attachments {
		if att.AttachmentNumber == attachmentNo {
			return att, true
		}
	}
	return Attachment{}, false
}

// ---------------------------------------------------------------------------
// Upload / Publish
// ---------------------------------------------------------------------------

// UploadFile is one staged file handed to the attachment upload service.
type UploadFile struct {
	// Name is the file name presented to the PLM
	Name string
	// Path is the absolute location inside the staging workspace
	Path string
}

// UploadedFile is the upload service's record of one accepted file.
type UploadedFile struct {
	// OriginalName is the name the file was uploaded under
	OriginalName string
	// NewName is the server-side name assigned by the upload service
	NewName string
}

// PublishAttachment is one attachment entry of the publish payload.
type PublishAttachment struct {
	AttachmentNumber string `json:"attachmentNo"`
	FileName         string `json:"fileName"`
	Location         string `json:"location"`
}

// PublishPayload is the complete style submission sent to the PLM.
type PublishPayload struct {
	Owner           string              `json:"owner"`
	RequestNo       string              `json:"requestNo"`
	StyleName       string              `json:"styleName"`
	ExternalStyleID string              `json:"styleId,omitempty"`
	Attachments     []PublishAttachment `json:"attachments"`
	Colorways       []ColorwayPayload   `json:"colorways"`
}

// ---------------------------------------------------------------------------
// Client Interface
// ---------------------------------------------------------------------------

// Client is the outbound PLM API surface consumed by the application layer.
// The PLM base URL is an explicit per-call parameter: each request names its
// target server, nothing is held as ambient client state.
type Client interface {
	// Login authenticates against the PLM and returns the session token.
	Login(ctx context.Context, baseURL, userID, password string) (*LoginResult, error)

	// SearchStyles finds tech specs matching a free-text term.
	SearchStyles(ctx context.Context, baseURL, token, term string) ([]TechSpec, error)

	// GetStyle fetches the tech specs registered under owner/requestNo.
	GetStyle(ctx context.Context, baseURL, token, owner, requestNo string) ([]TechSpec, error)

	// UploadAttachments sends staged files to the attachment service and
	// returns the server-side names, in upload order.
	UploadAttachments(ctx context.Context, baseURL, token string, files []UploadFile) ([]UploadedFile, error)

	// PublishStyle submits the assembled style payload.
	PublishStyle(ctx context.Context, baseURL, token string, payload *PublishPayload) error

	// LookupDisplayValue resolves an LOV code to its display description.
	// Unknown codes resolve to the code itself.
	LookupDisplayValue(ctx context.Context, baseURL, token string, key LOVKey, code string) (string, error)
}
