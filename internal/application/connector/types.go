package connector

import "github.com/stylelink/backend/internal/domain/plm"

// Session carries what every authenticated PLM call needs. The base URL
// travels with the request: each caller names its PLM server explicitly.
type Session struct {
	BaseURL string
	Token   string
}

// Asset is one publishable file, carried either inline or by reference.
type Asset struct {
	// Name is the file name the asset is staged and uploaded under
	Name string
	// Data is the inline content (direct upload)
	Data []byte
	// URL references the asset on the design tool's CDN
	URL string
}

// IsEmpty reports whether the asset carries nothing to stage
func (a Asset) IsEmpty() bool {
	return a.Name == "" || (len(a.Data) == 0 && a.URL == "")
}

// InternalColorway is one colorway as the design tool declares it. Position
// in the list pairs it with the tool's color swatch ordering.
type InternalColorway struct {
	Name      string
	ColorID   string
	ColorName string
}

// PublishRequest is everything one publish attempt needs.
type PublishRequest struct {
	Session

	// Owner is the PLM account the style belongs to
	Owner string
	// RequestNo identifies the tech spec on the PLM side
	RequestNo string
	// StyleName is the display name submitted with the style
	StyleName string

	// InternalStyleID identifies the style inside the design tool
	InternalStyleID string
	// InternalOwner is the design-tool user publishing the style
	InternalOwner string
	// ExternalStyleID is the PLM style id; derived from owner and request
	// number when empty
	ExternalStyleID string

	// LastRenderSequence is the highest render number already attached to
	// the tech spec; new renders are numbered after it
	LastRenderSequence int

	ProjectFile   Asset
	Thumbnail     Asset
	RenderArchive Asset

	// InternalColorways is the design tool's colorway list, in tool order
	InternalColorways []InternalColorway
	// ColorwayMappings pairs internal colorways with PLM colorways
	ColorwayMappings []plm.ColorwayMapping
}

// StyleSummary is one search result with display values resolved.
type StyleSummary struct {
	Owner        string `json:"owner"`
	RequestNo    string `json:"requestNo"`
	StyleName    string `json:"styleName"`
	Department   string `json:"department"`
	Brand        string `json:"brand"`
	Division     string `json:"division"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// ColorwayDetail is one PLM colorway of a fetched style.
type ColorwayDetail struct {
	Name          string `json:"colorwayName"`
	AssociationID string `json:"assocId,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
}

// StyleDetail is the full view of one fetched style.
type StyleDetail struct {
	StyleSummary
	Colorways []ColorwayDetail `json:"colorways"`
	// ProjectFileURL downloads the previously published project archive,
	// empty when the style has never carried one
	ProjectFileURL string `json:"projectFileUrl,omitempty"`
	// LastRenderSequence tells the design tool where render numbering
	// continues on the next publish
	LastRenderSequence int `json:"lastRenderSequence"`
}

// LoginInput carries a login attempt.
type LoginInput struct {
	BaseURL      string
	UserID       string
	Password     string
	InternalUser string
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
}
