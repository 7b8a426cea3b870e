package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylelink/backend/internal/application/connector"
	"github.com/stylelink/backend/internal/domain/plm"
	"github.com/stylelink/backend/internal/domain/shared"
	"github.com/stylelink/backend/internal/interfaces/http/dto"
)

// BaseURLHeader names the PLM server a request targets
const BaseURLHeader = "X-PLM-Base-URL"

// TokenHeader carries the PLM session token
const TokenHeader = "token"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the given body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends the uniform failure body for a status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(statusCode, message))
}

// BadRequest sends a 400 failure
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// HandleError maps connector and domain errors onto HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var statusErr *plm.StatusError
	if errors.As(err, &statusErr) {
		code := statusErr.StatusCode
		if code == 0 {
			code = http.StatusInternalServerError
		}
		h.Error(c, code, statusErr.Message)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, http.StatusBadRequest, domainErr.Message)
		return
	}

	h.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
}

// session builds the PLM session from request headers. The base URL is
// mandatory: every call names its target server.
func (h *BaseHandler) session(c *gin.Context) (connector.Session, bool) {
	baseURL := c.GetHeader(BaseURLHeader)
	if baseURL == "" {
		h.BadRequest(c, "missing "+BaseURLHeader+" header")
		return connector.Session{}, false
	}
	return connector.Session{
		BaseURL: baseURL,
		Token:   c.GetHeader(TokenHeader),
	}, true
}
