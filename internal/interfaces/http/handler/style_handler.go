package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/stylelink/backend/internal/application/connector"
	"github.com/stylelink/backend/internal/interfaces/http/dto"
	"github.com/stylelink/backend/internal/interfaces/http/middleware"
)

// StyleHandler exposes the locally persisted style links.
type StyleHandler struct {
	BaseHandler
	service *connector.Service
}

// NewStyleHandler creates a new style handler
func NewStyleHandler(service *connector.Service) *StyleHandler {
	return &StyleHandler{service: service}
}

// Recent handles GET /api/styles/recent
func (h *StyleHandler) Recent(c *gin.Context) {
	var query dto.RecentStylesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, middleware.FormatValidationError(err))
		return
	}

	records, err := h.service.RecentStyles(c.Request.Context(), query.InternalOwner, query.ExternalOwner, query.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	type recentStyle struct {
		InternalStyleID string `json:"internalStyleId"`
		ExternalStyleID string `json:"externalStyleId"`
		ModifiedAt      string `json:"modifiedAt"`
	}
	out := make([]recentStyle, 0, len(records))
	for _, record := range records {
		out = append(out, recentStyle{
			InternalStyleID: record.InternalStyleID,
			ExternalStyleID: record.ExternalStyleID,
			ModifiedAt:      record.ModifiedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	h.Success(c, gin.H{"styles": out})
}
