package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	"github.com/aussiebroadwan/qrtoken/pkg/cryptox"
	"github.com/aussiebroadwan/qrtoken/pkg/qrx"
)

// NewTokenRecord assembles a freshly issued, unused record valid for ttl
// from now. A non-positive ttl falls back to domain.DefaultTokenTTL.
func NewTokenRecord(token, qrImage string, employeeID int64, now time.Time, ttl time.Duration) domain.TokenRecord {
	if ttl <= 0 {
		ttl = domain.DefaultTokenTTL
	}

	return domain.TokenRecord{
		Token:      token,
		EmployeeID: employeeID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
		Used:       false,
		QRCode:     qrImage,
	}
}

// IssueService generates a token, renders it as a QR image and packages
// both into a TokenRecord.
type IssueService struct {
	Length     int
	Encoder    qrx.Encoder
	EmployeeID int64
	TTL        time.Duration

	// Now is the clock, time.Now when nil
	Now func() time.Time
}

// Issue runs generation, encoding and assembly once. Entropy failures wrap
// cryptox.ErrEntropySource and rendering failures wrap qrx.ErrEncoding.
func (s *IssueService) Issue() (domain.TokenRecord, error) {
	length := s.Length
	if length <= 0 {
		length = cryptox.DefaultTokenLength
	}

	token, err := cryptox.GenerateAlphanumeric(length)
	if err != nil {
		return domain.TokenRecord{}, fmt.Errorf("generate token: %w", err)
	}

	qrImage, err := s.Encoder.EncodeBase64(token)
	if err != nil {
		return domain.TokenRecord{}, fmt.Errorf("encode token: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	return NewTokenRecord(token, qrImage, s.EmployeeID, now(), s.TTL), nil
}
