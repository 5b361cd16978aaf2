package dto

import "time"

// APIResponse is the standard envelope for API responses. Either Data or
// Error is set, never both.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope around data
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewAPIErrorResponse creates an error envelope
func NewAPIErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	}
}
