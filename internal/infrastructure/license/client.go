package license

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
)

// Licensing service result codes
const (
	resultInvalid       = 0
	resultOK            = 1
	resultAlreadyActive = 2
	resultNotFound      = 3
	resultExpired       = 4
	resultSeatLimit     = 5
	resultServerError   = 101
	resultServerError2  = 102
)

// Checker gates PLM logins on a valid connector license.
type Checker interface {
	// Validate activates a license seat for the user
	Validate(ctx context.Context, userID string) error

	// Logout releases the user's license seat
	Logout(ctx context.Context, userID string) error
}

// Client talks to the licensing service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a licensing service client
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type licenseRequest struct {
	UserID string `json:"userId"`
}

type licenseResponse struct {
	Result int `json:"result"`
}

// Validate activates a license seat for the user
func (c *Client) Validate(ctx context.Context, userID string) error {
	result, err := c.call(ctx, "/api/v1/license/validate", userID)
	if err != nil {
		return err
	}

	switch result {
	case resultOK, resultAlreadyActive:
		return nil
	case resultInvalid, resultNotFound:
		return &plm.StatusError{Kind: plm.ErrorKindBusiness, StatusCode: http.StatusUnauthorized, Message: "license is not valid"}
	case resultExpired:
		return &plm.StatusError{Kind: plm.ErrorKindBusiness, StatusCode: http.StatusUnauthorized, Message: "license has expired"}
	case resultSeatLimit:
		return &plm.StatusError{Kind: plm.ErrorKindBusiness, StatusCode: http.StatusForbidden, Message: "license seat limit reached"}
	case resultServerError, resultServerError2:
		return plm.NewTransportError(http.StatusBadGateway, "license server error")
	default:
		return plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("unknown license result code %d", result))
	}
}

// Logout releases the user's license seat. Failures are logged, not
// propagated: a stuck seat must not block the user from leaving.
func (c *Client) Logout(ctx context.Context, userID string) error {
	if _, err := c.call(ctx, "/api/v1/license/logout", userID); err != nil {
		c.logger.Warn("License logout failed", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

func (c *Client) call(ctx context.Context, path, userID string) (int, error) {
	body, err := json.Marshal(licenseRequest{UserID: userID})
	if err != nil {
		return 0, plm.NewLocalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, plm.NewLocalError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, plm.NewTransportError(http.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, plm.NewTransportError(http.StatusBadGateway, err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return 0, plm.NewTransportError(resp.StatusCode, string(respBody))
	}

	var parsed licenseResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return 0, plm.NewTransportError(http.StatusBadGateway, fmt.Sprintf("malformed license response: %v", err))
	}
	return parsed.Result, nil
}

// NoopChecker skips license checks for deployments without licensing.
type NoopChecker struct{}

// Validate always succeeds
func (NoopChecker) Validate(context.Context, string) error { return nil }

// Logout always succeeds
func (NoopChecker) Logout(context.Context, string) error { return nil }

var (
	_ Checker = (*Client)(nil)
	_ Checker = NoopChecker{}
)
