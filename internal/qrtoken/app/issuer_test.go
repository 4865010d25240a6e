package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/qrtoken/internal/qrtoken/http"
	"github.com/aussiebroadwan/qrtoken/pkg/cryptox"
	"github.com/aussiebroadwan/qrtoken/pkg/qrtokensdk"
	"github.com/aussiebroadwan/qrtoken/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testIssuerConfig(target string) IssuerConfig {
	return IssuerConfig{
		TargetURL:   target,
		TokenTTL:    time.Hour,
		TokenLength: cryptox.DefaultTokenLength,
		EmployeeID:  1,
	}
}

func TestIssuer_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	t.Run("lenient", func(t *testing.T) {
		var out bytes.Buffer
		err := newIssuer(testIssuerConfig(target), &out, slogx.Discard()).Run(context.Background())
		require.NoError(t, err)
		require.Contains(t, out.String(), "Generated data:")
		require.Contains(t, out.String(), "Error sending to backend: ")
	})

	t.Run("strict", func(t *testing.T) {
		cfg := testIssuerConfig(target)
		cfg.Strict = true

		var out bytes.Buffer
		err := newIssuer(cfg, &out, slogx.Discard()).Run(context.Background())

		var terr *qrtokensdk.TransportError
		require.True(t, errors.As(err, &terr))
		require.Contains(t, out.String(), "Error sending to backend: ")
	})
}

func TestIssuer_NonSuccessStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_request"}`))
	}))
	t.Cleanup(srv.Close)

	cfg := testIssuerConfig(srv.URL)
	cfg.Strict = true

	var out bytes.Buffer
	require.NoError(t, newIssuer(cfg, &out, slogx.Discard()).Run(context.Background()))
	require.Contains(t, out.String(), "Status: 400\n")
}

func TestIssuer_EncodingFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)

	cfg := testIssuerConfig(srv.URL)
	cfg.TokenLength = 5000

	var out bytes.Buffer
	err := newIssuer(cfg, &out, slogx.Discard()).Run(context.Background())
	require.Error(t, err)
	require.Zero(t, calls, "nothing is sent when encoding fails")
	require.Empty(t, out.String())
}

// TestIssuer_EndToEnd delivers a token to a real server and reads it back.
func TestIssuer_EndToEnd(t *testing.T) {
	app, err := New(ServerConfig{
		DatabaseFile:         ":memory:",
		LogLevel:             "error",
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
		Retention:            24 * time.Hour,
		RateLimits:           httpapi.DefaultRateLimits(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	require.NoError(t, newIssuer(testIssuerConfig(srv.URL), &out, slogx.Discard()).Run(context.Background()))

	report := out.String()
	require.Contains(t, report, "Status: 201\n")

	token := ""
	for _, line := range strings.Split(report, "\n") {
		if v, ok := strings.CutPrefix(line, "Token: "); ok {
			token = v
		}
	}
	require.Len(t, token, cryptox.DefaultTokenLength)

	client := qrtokensdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	list, err := client.ListQRTokens(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, token, list[0].Token)
	require.Equal(t, int64(1), list[0].EmployeeID)
	require.Equal(t, time.Hour, list[0].ExpiresAt.Sub(list[0].CreatedAt))

	valid, err := client.ValidateToken(ctx, token)
	require.NoError(t, err)
	require.True(t, valid)

	_, err = client.MarkUsed(ctx, list[0].ID)
	require.NoError(t, err)

	valid, err = client.ValidateToken(ctx, token)
	require.NoError(t, err)
	require.False(t, valid)
}
