package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/application/connector"
	"github.com/stylelink/backend/internal/domain/plm"
	"github.com/stylelink/backend/internal/infrastructure/fieldconfig"
	"github.com/stylelink/backend/internal/interfaces/http/dto"
	"github.com/stylelink/backend/internal/interfaces/http/middleware"
)

// PLMHandler exposes the PLM-facing flows: login, search, get, publish, and
// the static field definitions.
type PLMHandler struct {
	BaseHandler
	service *connector.Service
	logger  *zap.Logger
}

// NewPLMHandler creates a new PLM handler
func NewPLMHandler(service *connector.Service, logger *zap.Logger) *PLMHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PLMHandler{service: service, logger: logger}
}

// Login handles POST /api/plm/login
func (h *PLMHandler) Login(c *gin.Context) {
	baseURL := c.GetHeader(BaseURLHeader)
	if baseURL == "" {
		h.BadRequest(c, "missing "+BaseURLHeader+" header")
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	out, err := h.service.Login(c.Request.Context(), &connector.LoginInput{
		BaseURL:      baseURL,
		UserID:       req.UserID,
		Password:     req.Password,
		InternalUser: req.InternalUser,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

// Search handles GET /api/plm/styles?term=...
func (h *PLMHandler) Search(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	results, err := h.service.Search(c.Request.Context(), session, c.Query("term"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"styles": results})
}

// Get handles GET /api/plm/style?owner=...&requestNo=...
func (h *PLMHandler) Get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	owner := c.Query("owner")
	requestNo := c.Query("requestNo")
	if owner == "" || requestNo == "" {
		h.BadRequest(c, "owner and requestNo are required")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), session, owner, requestNo)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// Publish handles POST /api/plm/publish. The request is a multipart form:
// scalar fields plus optional projectFile/thumbnail/renderArchive file parts,
// each replaceable by a *Url field referencing the design tool's CDN.
func (h *PLMHandler) Publish(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	req := &connector.PublishRequest{
		Session:         session,
		Owner:           c.PostForm("owner"),
		RequestNo:       c.PostForm("requestNo"),
		StyleName:       c.PostForm("styleName"),
		InternalStyleID: c.PostForm("internalStyleId"),
		InternalOwner:   c.PostForm("internalOwner"),
		ExternalStyleID: c.PostForm("externalStyleId"),
	}

	if raw := c.PostForm("lastRenderSequence"); raw != "" {
		seq, err := strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "lastRenderSequence must be an integer")
			return
		}
		req.LastRenderSequence = seq
	}

	var err error
	if req.ProjectFile, err = h.formAsset(c, "projectFile", "projectFileUrl"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Thumbnail, err = h.formAsset(c, "thumbnail", "thumbnailUrl"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.RenderArchive, err = h.formAsset(c, "renderArchive", "renderArchiveUrl"); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := parseJSONField(c, "colorwayMappings", &req.ColorwayMappings, func(in []dto.ColorwayMappingRequest) []plm.ColorwayMapping {
		out := make([]plm.ColorwayMapping, 0, len(in))
		for _, m := range in {
			out = append(out, plm.ColorwayMapping{
				InternalColorwayName:  m.InternalName,
				ExternalColorwayName:  m.ExternalName,
				ExternalAssociationID: m.AssocID,
			})
		}
		return out
	}); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := parseJSONField(c, "internalColorways", &req.InternalColorways, func(in []dto.InternalColorwayRequest) []connector.InternalColorway {
		out := make([]connector.InternalColorway, 0, len(in))
		for _, cw := range in {
			out = append(out, connector.InternalColorway{
				Name:      cw.Name,
				ColorID:   cw.ColorID,
				ColorName: cw.ColorName,
			})
		}
		return out
	}); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Publish(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"status": "published"})
}

// ViewFields handles GET /api/plm/fields/view
func (h *PLMHandler) ViewFields(c *gin.Context) {
	c.Data(200, "application/json", fieldconfig.ViewFields())
}

// ResultFields handles GET /api/plm/fields/results
func (h *PLMHandler) ResultFields(c *gin.Context) {
	c.Data(200, "application/json", fieldconfig.ResultFields())
}

// SettingFields handles GET /api/plm/fields/settings
func (h *PLMHandler) SettingFields(c *gin.Context) {
	c.Data(200, "application/json", fieldconfig.SettingFields())
}

// formAsset reads one asset from the form: an uploaded file part wins, a
// *Url field references it instead, neither leaves the asset empty.
func (h *PLMHandler) formAsset(c *gin.Context, fileField, urlField string) (connector.Asset, error) {
	fileHeader, err := c.FormFile(fileField)
	if err == nil && fileHeader != nil {
		data, err := readMultipartFile(fileHeader)
		if err != nil {
			return connector.Asset{}, err
		}
		return connector.Asset{Name: path.Base(fileHeader.Filename), Data: data}, nil
	}

	rawURL := c.PostForm(urlField)
	if rawURL == "" {
		return connector.Asset{}, nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return connector.Asset{}, err
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "/" || name == "." {
		name = fileField
	}
	return connector.Asset{Name: name, URL: rawURL}, nil
}

func readMultipartFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// parseJSONField decodes a JSON-encoded form field through a DTO conversion
func parseJSONField[In, Out any](c *gin.Context, field string, dest *Out, convert func(In) Out) error {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	var in In
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return err
	}
	*dest = convert(in)
	return nil
}
