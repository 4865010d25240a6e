package qrtokensdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/qrtoken/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeConflict       = "conflict"
	ErrorCodeServerError    = "server_error"
)

// TransportError reports a request that never produced an HTTP response:
// connection refused, DNS failure, timeout or cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is an error response returned by the server.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is a machine readable error code (e.g., "not_found")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// WithDescription returns a copy of e with a more specific description.
func (e *APIError) WithDescription(desc string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Description: desc}
}

// Is reports whether target is an *APIError with the same Code. This lets
// callers match against the predefined errors with errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidRequest = &APIError{StatusCode: http.StatusBadRequest, Code: ErrorCodeInvalidRequest, Description: "the request is malformed or missing required fields"}
	ErrNotFound       = &APIError{StatusCode: http.StatusNotFound, Code: ErrorCodeNotFound, Description: "QR token not found"}
	ErrConflict       = &APIError{StatusCode: http.StatusConflict, Code: ErrorCodeConflict, Description: "QR token already exists"}
	ErrServerError    = &APIError{StatusCode: http.StatusInternalServerError, Code: ErrorCodeServerError, Description: "internal server error"}
)

// parseErrorResponse converts an error response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	code := ErrorCodeServerError
	switch resp.StatusCode {
	case http.StatusNotFound:
		code = ErrorCodeNotFound
	case http.StatusConflict:
		code = ErrorCodeConflict
	case http.StatusBadRequest:
		code = ErrorCodeInvalidRequest
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        code,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
