package plmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
)

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 10 * 1024 * 1024 // 10MB

	// tokenHeader carries the PLM session token on authenticated calls
	tokenHeader = "token"

	// userIDHeader and passwordHeader carry login credentials. The PLM
	// session endpoint reads credentials from headers, not from a body.
	userIDHeader   = "userId"
	passwordHeader = "password"

	// tokenExpiryOffset asks for a session valid this many minutes
	tokenExpiryOffset = "480"
)

// PLM API paths
const (
	loginPath   = "/api/v1/session"
	searchPath  = "/api/v1/techspecs/search"
	getPath     = "/api/v1/techspecs"
	uploadPath  = "/api/v1/attachments"
	publishPath = "/api/v1/techspecs/publish"
	lovPath     = "/api/v1/lov"
)

// Config holds PLM client configuration
type Config struct {
	// CompanyName selects the PLM tenant on login
	CompanyName string
	// Timeout bounds every outbound call
	Timeout time.Duration
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("plmclient: timeout must be positive")
	}
	return nil
}

// Client is the REST adapter for the PLM API. The target server is a per-call
// parameter; one client instance serves every PLM the deployment talks to.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new PLM client with the given configuration
func New(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}, nil
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// Login authenticates against the PLM and returns the session token.
// The session endpoint is a GET: credentials travel as request headers, the
// tenant and token lifetime as query parameters. Business rejections surface
// as 401: the PLM reports bad credentials inside a 200 response.
func (c *Client) Login(ctx context.Context, baseURL, userID, password string) (*plm.LoginResult, error) {
	u := fmt.Sprintf("%s%s?company=%s&expOffset=%s",
		baseURL, loginPath, url.QueryEscape(c.config.CompanyName), tokenExpiryOffset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, plm.NewLocalError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(userIDHeader, userID)
	req.Header.Set(passwordHeader, password)

	respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("malformed login response: %v", err))
	}

	msg, err := firstRequired(resp.Document.Message)
	if err != nil {
		return nil, err
	}
	if !msg.IsSuccess() {
		return nil, plm.NewBusinessError(msg.MessageID, msg.MessageDesc, http.StatusUnauthorized)
	}

	result := &plm.LoginResult{Token: msg.Token}
	if len(resp.Document.User) > 0 {
		result.UserName = resp.Document.User[0].UserName
	}

	c.logger.Info("PLM login succeeded", zap.String("user_id", userID))
	return result, nil
}

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

// SearchStyles finds tech specs matching a free-text term.
func (c *Client) SearchStyles(ctx context.Context, baseURL, token, term string) ([]plm.TechSpec, error) {
	u := fmt.Sprintf("%s%s?term=%s", baseURL, searchPath, url.QueryEscape(term))
	return c.fetchTechSpecs(ctx, u, token)
}

// GetStyle fetches the tech specs registered under owner/requestNo.
func (c *Client) GetStyle(ctx context.Context, baseURL, token, owner, requestNo string) ([]plm.TechSpec, error) {
	u := fmt.Sprintf("%s%s?owner=%s&requestNo=%s",
		baseURL, getPath, url.QueryEscape(owner), url.QueryEscape(requestNo))
	return c.fetchTechSpecs(ctx, u, token)
}

func (c *Client) fetchTechSpecs(ctx context.Context, url, token string) ([]plm.TechSpec, error) {
	respBody, err := c.doJSON(ctx, http.MethodGet, url, token, nil)
	if err != nil {
		return nil, err
	}

	var resp styleResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("malformed style response: %v", err))
	}

	msg, err := firstRequired(resp.Document.Message)
	if err != nil {
		return nil, err
	}
	if !msg.IsSuccess() {
		return nil, plm.NewBusinessError(msg.MessageID, msg.MessageDesc, http.StatusBadRequest)
	}

	specs := make([]plm.TechSpec, 0, len(resp.Document.TechSpec))
	for i := range resp.Document.TechSpec {
		specs = append(specs, resp.Document.TechSpec[i].ToDomain())
	}
	return specs, nil
}

// ---------------------------------------------------------------------------
// Attachments
// ---------------------------------------------------------------------------

// UploadAttachments sends staged files to the attachment service as a single
// multipart request. Each accepted file comes back with the server-side name
// the upload service assigned; any per-file rejection fails the whole upload.
func (c *Client) UploadAttachments(ctx context.Context, baseURL, token string, files []plm.UploadFile) ([]plm.UploadedFile, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, file := range files {
		if err := writeFilePart(writer, file); err != nil {
			return nil, plm.NewLocalError(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, plm.NewLocalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+uploadPath, &body)
	if err != nil {
		return nil, plm.NewLocalError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(tokenHeader, token)

	respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var resp uploadResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("malformed upload response: %v", err))
	}

	uploaded := make([]plm.UploadedFile, 0, len(resp.Document.Location))
	for i := range resp.Document.Location {
		loc := &resp.Document.Location[i]
		if !loc.IsSuccess() {
			msg := messageRecord{}
			if len(loc.Messages.Message) > 0 {
				msg = loc.Messages.Message[0]
			}
			return nil, plm.NewBusinessError(msg.MessageID, msg.MessageDesc, http.StatusBadRequest)
		}
		uploaded = append(uploaded, plm.UploadedFile{
			OriginalName: loc.OldFileName,
			NewName:      loc.NewFileName,
		})
	}

	c.logger.Info("Uploaded attachments", zap.Int("count", len(uploaded)))
	return uploaded, nil
}

// writeFilePart streams one staged file into the multipart body
func writeFilePart(writer *multipart.Writer, file plm.UploadFile) error {
	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return err
	}
	f, err := os.Open(file.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(part, f)
	return err
}

// ---------------------------------------------------------------------------
// Publish
// ---------------------------------------------------------------------------

// PublishStyle submits the assembled style payload.
func (c *Client) PublishStyle(ctx context.Context, baseURL, token string, payload *plm.PublishPayload) error {
	respBody, err := c.doJSON(ctx, http.MethodPost, baseURL+publishPath, token, payload)
	if err != nil {
		return err
	}

	var resp publishResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("malformed publish response: %v", err))
	}

	msg, ok := resp.firstMessage()
	if !ok {
		return plm.NewTransportError(http.StatusBadGateway, "publish response carried no status message")
	}
	if !msg.IsSuccess() {
		return plm.NewBusinessError(msg.MessageID, msg.MessageDesc, http.StatusBadRequest)
	}
	return nil
}

// ---------------------------------------------------------------------------
// LOV
// ---------------------------------------------------------------------------

// LookupDisplayValue resolves an LOV code to its display description.
// Codes missing from the list resolve to themselves so an incomplete LOV
// never blocks a read.
func (c *Client) LookupDisplayValue(ctx context.Context, baseURL, token string, key plm.LOVKey, code string) (string, error) {
	u := fmt.Sprintf("%s%s/%s", baseURL, lovPath, url.PathEscape(string(key)))
	respBody, err := c.doJSON(ctx, http.MethodGet, u, token, nil)
	if err != nil {
		return "", err
	}

	var resp lovResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("malformed lov response: %v", err))
	}

	msg, err := firstRequired(resp.Document.Message)
	if err != nil {
		return "", err
	}
	if !msg.IsSuccess() {
		return "", plm.NewBusinessError(msg.MessageID, msg.MessageDesc, http.StatusBadRequest)
	}

	for _, entry := range resp.Document.LOV {
		if entry.Code == code {
			return entry.Description, nil
		}
	}
	return code, nil
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// doJSON performs a JSON request and returns the raw body of a 200 response
func (c *Client) doJSON(ctx context.Context, method, url, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, plm.NewLocalError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, plm.NewLocalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	return c.send(req)
}

// send executes the request, enforcing the non-200 transport error contract
func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, plm.NewTransportError(http.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, plm.NewTransportError(http.StatusBadGateway, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		// Raw body preserved so the caller sees what the PLM actually said
		return nil, plm.NewTransportError(resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// firstRequired returns the leading status message or a transport error when
// the envelope carries none
func firstRequired(msgs []messageRecord) (messageRecord, error) {
	if len(msgs) == 0 {
		return messageRecord{}, plm.NewTransportError(http.StatusBadGateway, "response carried no status message")
	}
	return msgs[0], nil
}

// Ensure Client implements the domain interface
var _ plm.Client = (*Client)(nil)
