package dto

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// NewErrorResponse builds the failure body for a status code and message
func NewErrorResponse(statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: statusCode,
		Status:     "failed",
		Message:    message,
	}
}
