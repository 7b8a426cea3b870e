package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/application/connector"
	"github.com/stylelink/backend/internal/domain/plm"
	"github.com/stylelink/backend/internal/domain/style"
	"github.com/stylelink/backend/internal/infrastructure/lov"
	"github.com/stylelink/backend/internal/infrastructure/staging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubClient is a minimal plm.Client for handler tests
type stubClient struct {
	loginResult *plm.LoginResult
	loginErr    error
	searchSpecs []plm.TechSpec
	published   *plm.PublishPayload
}

func (s *stubClient) Login(context.Context, string, string, string) (*plm.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubClient) SearchStyles(context.Context, string, string, string) ([]plm.TechSpec, error) {
	return s.searchSpecs, nil
}

func (s *stubClient) GetStyle(context.Context, string, string, string, string) ([]plm.TechSpec, error) {
	return s.searchSpecs, nil
}

func (s *stubClient) UploadAttachments(_ context.Context, _, _ string, files []plm.UploadFile) ([]plm.UploadedFile, error) {
	uploaded := make([]plm.UploadedFile, 0, len(files))
	for _, f := range files {
		uploaded = append(uploaded, plm.UploadedFile{OriginalName: f.Name, NewName: "srv_" + f.Name})
	}
	return uploaded, nil
}

func (s *stubClient) PublishStyle(_ context.Context, _, _ string, payload *plm.PublishPayload) error {
	s.published = payload
	return nil
}

func (s *stubClient) LookupDisplayValue(_ context.Context, _, _ string, _ plm.LOVKey, code string) (string, error) {
	return code, nil
}

type stubStyleRepo struct{ saved *style.StyleRecord }

func (r *stubStyleRepo) FindByStyleIDs(context.Context, string, string) (*style.StyleRecord, error) {
	return nil, nil
}

func (r *stubStyleRepo) Save(_ context.Context, record *style.StyleRecord) error {
	r.saved = record
	return nil
}

func (r *stubStyleRepo) FindRecent(context.Context, string, string, int) ([]style.StyleRecord, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, client plm.Client) (*gin.Engine, *stubStyleRepo) {
	t.Helper()
	repo := &stubStyleRepo{}
	service := connector.NewService(
		client,
		staging.New(t.TempDir(), nil),
		lov.NewResolver(lov.NewMemoryStore(), nil),
		repo,
		nil,
		nil,
		zap.NewNop(),
	)

	engine := gin.New()
	plmHandler := NewPLMHandler(service, zap.NewNop())
	engine.POST("/api/plm/login", plmHandler.Login)
	engine.GET("/api/plm/styles", plmHandler.Search)
	engine.POST("/api/plm/publish", plmHandler.Publish)
	engine.GET("/api/plm/fields/view", plmHandler.ViewFields)
	return engine, repo
}

func TestLoginHandlerSuccess(t *testing.T) {
	engine, _ := newTestRouter(t, &stubClient{
		loginResult: &plm.LoginResult{Token: "tok-123", UserName: "Jane Doe"},
	})

	body := `{"userId":"jdoe","password":"secret","internalUser":"designer"}`
	req := httptest.NewRequest(http.MethodPost, "/api/plm/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(BaseURLHeader, "https://plm.example.com")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok-123", resp["token"])
	assert.Equal(t, "Jane Doe", resp["userName"])
}

func TestLoginHandlerBusinessFailureIs401(t *testing.T) {
	engine, _ := newTestRouter(t, &stubClient{
		loginErr: plm.NewBusinessError("E01", "Invalid credentials", http.StatusUnauthorized),
	})

	body := `{"userId":"jdoe","password":"bad"}`
	req := httptest.NewRequest(http.MethodPost, "/api/plm/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(BaseURLHeader, "https://plm.example.com")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(http.StatusUnauthorized), resp["statusCode"])
	assert.Equal(t, "failed", resp["status"])
	assert.Equal(t, "E01: Invalid credentials", resp["message"])
}

func TestSearchHandlerRequiresBaseURLHeader(t *testing.T) {
	engine, _ := newTestRouter(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/api/plm/styles?term=dress", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), BaseURLHeader)
}

func TestPublishHandlerMultipart(t *testing.T) {
	client := &stubClient{}
	engine, repo := newTestRouter(t, client)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("owner", "jdoe"))
	require.NoError(t, form.WriteField("requestNo", "REQ001"))
	require.NoError(t, form.WriteField("styleName", "Summer Dress"))
	require.NoError(t, form.WriteField("internalStyleId", "closet-1"))
	require.NoError(t, form.WriteField("internalOwner", "designer"))
	require.NoError(t, form.WriteField("lastRenderSequence", "2"))
	require.NoError(t, form.WriteField("colorwayMappings",
		`[{"internalName":"Drop here","externalName":"Slot A"},{"internalName":"Navy","externalName":"Slot B"}]`))
	require.NoError(t, form.WriteField("internalColorways",
		`[{"name":"Navy","colorId":"C100","colorName":"Dark Navy"}]`))

	part, err := form.CreateFormFile("projectFile", "dress.zprj")
	require.NoError(t, err)
	_, err = part.Write([]byte("project-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/plm/publish", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set(BaseURLHeader, "https://plm.example.com")
	req.Header.Set(TokenHeader, "tok")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, client.published)
	assert.Equal(t, "jdoe-:-REQ001", client.published.ExternalStyleID)
	require.Len(t, client.published.Attachments, 1)
	assert.Equal(t, plm.AttachmentNumberProjectFile, client.published.Attachments[0].AttachmentNumber)

	// Sentinel slot dropped, real mapping published
	require.Len(t, client.published.Colorways, 1)
	assert.Equal(t, "Navy", client.published.Colorways[0].ColorwayName)

	require.NotNil(t, repo.saved)
	assert.Equal(t, "closet-1", repo.saved.InternalStyleID)
}

func TestPublishHandlerNoAssets(t *testing.T) {
	engine, _ := newTestRouter(t, &stubClient{})

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("owner", "jdoe"))
	require.NoError(t, form.WriteField("requestNo", "REQ001"))
	require.NoError(t, form.WriteField("internalStyleId", "closet-1"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/plm/publish", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set(BaseURLHeader, "https://plm.example.com")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no files available to upload")
}

func TestViewFieldsServed(t *testing.T) {
	engine, _ := newTestRouter(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/api/plm/fields/view", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc, "fields")
}
