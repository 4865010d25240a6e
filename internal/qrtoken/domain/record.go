package domain

import "time"

const (
	// DefaultTokenTTL is how long an issued token stays valid.
	DefaultTokenTTL = time.Hour

	// DefaultEmployeeID is the placeholder subject used when none is configured.
	DefaultEmployeeID int64 = 1
)

// TokenRecord describes a freshly issued token. It is built once and never
// mutated.
type TokenRecord struct {
	Token      string
	EmployeeID int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Used       bool
	QRCode     string // base64 PNG encoding Token
}

// QRToken is a TokenRecord as stored by the server.
type QRToken struct {
	ID         int64
	Token      string
	EmployeeID int64
	CreatedAt  time.Time
	ExpiresAt  time.Time
	Used       bool
	QRCode     string
	UpdatedAt  time.Time
}

// IsValidAt reports whether the token can still be redeemed at t.
func (q QRToken) IsValidAt(t time.Time) bool {
	return !q.Used && !t.After(q.ExpiresAt)
}

// QRTokenPatch carries a partial update. Nil fields are left untouched.
type QRTokenPatch struct {
	Token      *string
	EmployeeID *int64
	CreatedAt  *time.Time
	ExpiresAt  *time.Time
	Used       *bool
	QRCode     *string
}

// Apply returns q with the patch fields set.
func (p QRTokenPatch) Apply(q QRToken) QRToken {
	if p.Token != nil {
		q.Token = *p.Token
	}
	if p.EmployeeID != nil {
		q.EmployeeID = *p.EmployeeID
	}
	if p.CreatedAt != nil {
		q.CreatedAt = *p.CreatedAt
	}
	if p.ExpiresAt != nil {
		q.ExpiresAt = *p.ExpiresAt
	}
	if p.Used != nil {
		q.Used = *p.Used
	}
	if p.QRCode != nil {
		q.QRCode = *p.QRCode
	}
	return q
}
