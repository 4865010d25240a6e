package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/qrtoken/internal/qrtoken/domain"
	"github.com/aussiebroadwan/qrtoken/pkg/cryptox"
	"github.com/aussiebroadwan/qrtoken/pkg/qrtokensdk"
)

// qrPreviewLen is how much of the base64 image the console report shows.
const qrPreviewLen = 50

// Transmitter delivers an issued record to the backend and reports the
// outcome on Out.
type Transmitter struct {
	Client *qrtokensdk.SDKClient
	Out    io.Writer
	Logger *slog.Logger
}

// Transmit prints rec, sends it with a single POST and prints the server's
// reply. Any HTTP status counts as delivered. When no response arrives the
// failure is printed and the *qrtokensdk.TransportError is returned so the
// caller can decide whether it is fatal.
func (t *Transmitter) Transmit(ctx context.Context, rec domain.TokenRecord) error {
	PrintRecord(t.Out, rec)

	resp, err := t.Client.CreateQRToken(ctx, ToCreateRequest(rec))
	if err != nil {
		fmt.Fprintf(t.Out, "Error sending to backend: %v\n", err)
		t.Logger.Warn("qr token delivery failed",
			"token_fp", cryptox.FingerprintToken(rec.Token),
			"error", err,
		)
		return err
	}

	fmt.Fprintln(t.Out, "\nServer response:")
	fmt.Fprintf(t.Out, "Status: %d\n", resp.StatusCode)
	fmt.Fprintf(t.Out, "Response: %s\n", resp.Body)

	level := slog.LevelInfo
	if resp.StatusCode >= 300 {
		level = slog.LevelWarn
	}
	t.Logger.Log(ctx, level, "qr token delivered",
		"token_fp", cryptox.FingerprintToken(rec.Token),
		"status", resp.StatusCode,
	)

	return nil
}

// PrintRecord writes the human readable summary of rec.
func PrintRecord(w io.Writer, rec domain.TokenRecord) {
	fmt.Fprintln(w, "Generated data:")
	fmt.Fprintf(w, "Token: %s\n", rec.Token)
	fmt.Fprintf(w, "Employee ID: %d\n", rec.EmployeeID)
	fmt.Fprintf(w, "Created at: %s\n", rec.CreatedAt.Format(time.RFC3339Nano))
	fmt.Fprintf(w, "Expires at: %s\n", rec.ExpiresAt.Format(time.RFC3339Nano))
	fmt.Fprintf(w, "Used: %t\n", rec.Used)
	fmt.Fprintf(w, "QR Code (base64): %s...\n", preview(rec.QRCode, qrPreviewLen))
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// ToCreateRequest maps a record onto the wire payload.
func ToCreateRequest(rec domain.TokenRecord) qrtokensdk.CreateQRTokenRequest {
	return qrtokensdk.CreateQRTokenRequest{
		Token:      rec.Token,
		EmployeeID: rec.EmployeeID,
		CreatedAt:  rec.CreatedAt,
		ExpiresAt:  rec.ExpiresAt,
		Used:       rec.Used,
		QRCode:     rec.QRCode,
	}
}
