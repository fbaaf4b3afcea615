package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Fields:
//   - Message: Human readable summary, safe to show in the dashboard.
//   - ErrorDetails: Underlying error text (empty when there is none).
//   - Timestamp: Time the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"industry not found"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid Industry value \"Space\""`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so the response can travel through c.Error().
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
