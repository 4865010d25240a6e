package qrtokensdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every error returned by the server.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RawResponse is an HTTP response returned without interpretation.
type RawResponse struct {
	StatusCode int
	Status     string
	Body       []byte
}

// ============================================================================
// QR Token Types
// ============================================================================

// CreateQRTokenRequest is the body of POST /qrtoken.
type CreateQRTokenRequest struct {
	Token      string    `json:"token"       validate:"required,alphanum,max=512"`
	EmployeeID int64     `json:"empleado_id" validate:"required,gt=0"`
	CreatedAt  time.Time `json:"creado_en"   validate:"required"`
	ExpiresAt  time.Time `json:"expira_en"   validate:"required,gtfield=CreatedAt"`
	Used       bool      `json:"usado"`
	QRCode     string    `json:"qrCode"      validate:"required,base64"` // base64 PNG
}

// UpdateQRTokenRequest is the body of PATCH /qrtoken/{id}. Omitted fields
// are left unchanged.
type UpdateQRTokenRequest struct {
	Token      *string    `json:"token,omitempty"       validate:"omitempty,alphanum,max=512"`
	EmployeeID *int64     `json:"empleado_id,omitempty" validate:"omitempty,gt=0"`
	CreatedAt  *time.Time `json:"creado_en,omitempty"`
	ExpiresAt  *time.Time `json:"expira_en,omitempty"`
	Used       *bool      `json:"usado,omitempty"`
	QRCode     *string    `json:"qrCode,omitempty"      validate:"omitempty,base64"`
}

// QRToken is a stored token as returned by the server.
type QRToken struct {
	ID         int64     `json:"id"`
	Token      string    `json:"token"`
	EmployeeID int64     `json:"empleado_id"`
	CreatedAt  time.Time `json:"creado_en"`
	ExpiresAt  time.Time `json:"expira_en"`
	Used       bool      `json:"usado"`
	QRCode     string    `json:"qrCode"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// QRTokenResponse wraps a single token. Data is nil when a lookup by token
// finds nothing.
type QRTokenResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    *QRToken `json:"data"`
}

// QRTokenListResponse wraps a list of tokens, newest first.
type QRTokenListResponse struct {
	Success bool      `json:"success"`
	Data    []QRToken `json:"data"`
}

// MessageResponse is returned by operations with no data, such as delete.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks holds per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
