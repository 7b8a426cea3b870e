package style

import "github.com/stylelink/backend/internal/domain/shared"

var (
	ErrInvalidInternalStyleID = shared.NewDomainError("STYLE_INVALID_INTERNAL_ID", "Internal style ID is required")
	ErrInvalidExternalStyleID = shared.NewDomainError("STYLE_INVALID_EXTERNAL_ID", "External style ID is required")
)
