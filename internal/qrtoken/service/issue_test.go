package service

import (
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	"github.com/aussiebroadwan/qrtoken/pkg/cryptox"
	"github.com/aussiebroadwan/qrtoken/pkg/qrx"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/require"
)

func TestNewTokenRecord(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 30, 0, 123456789, time.UTC)

	tests := []struct {
		name       string
		ttl        time.Duration
		wantExpiry time.Time
	}{
		{"default ttl", domain.DefaultTokenTTL, now.Add(time.Hour)},
		{"zero ttl falls back to default", 0, now.Add(time.Hour)},
		{"custom ttl", 5 * time.Minute, now.Add(5 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewTokenRecord("tok", "cXI=", 7, now, tt.ttl)
			require.Equal(t, "tok", rec.Token)
			require.Equal(t, "cXI=", rec.QRCode)
			require.Equal(t, int64(7), rec.EmployeeID)
			require.Equal(t, now, rec.CreatedAt)
			require.Equal(t, tt.wantExpiry, rec.ExpiresAt)
			require.False(t, rec.Used)
		})
	}
}

func TestIssueService_Issue(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &IssueService{
		Encoder:    qrx.NewEncoder(),
		EmployeeID: domain.DefaultEmployeeID,
		Now:        func() time.Time { return now },
	}

	rec, err := svc.Issue()
	require.NoError(t, err)

	require.Len(t, rec.Token, cryptox.DefaultTokenLength)
	require.True(t, cryptox.IsAlphanumeric(rec.Token))
	require.Equal(t, int64(1), rec.EmployeeID)
	require.Equal(t, now, rec.CreatedAt)
	require.Equal(t, time.Hour, rec.ExpiresAt.Sub(rec.CreatedAt))
	require.False(t, rec.Used)

	decoded, err := qrx.DecodeBase64(rec.QRCode)
	require.NoError(t, err)
	require.Equal(t, rec.Token, decoded)
}

func TestIssueService_EncodingFailure(t *testing.T) {
	t.Parallel()

	// A token this long does not fit in any QR symbol at the highest level
	svc := &IssueService{
		Length:  5000,
		Encoder: qrx.Encoder{Level: qrcode.Highest, Size: qrx.DefaultSize},
	}

	_, err := svc.Issue()
	require.ErrorIs(t, err, qrx.ErrEncoding)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestIssueService_EntropyFailure(t *testing.T) {
	orig := cryptox.Reader
	cryptox.Reader = brokenReader{}
	t.Cleanup(func() { cryptox.Reader = orig })

	svc := &IssueService{Encoder: qrx.NewEncoder()}
	rec, err := svc.Issue()
	require.ErrorIs(t, err, cryptox.ErrEntropySource)
	require.Empty(t, rec.Token)
}
