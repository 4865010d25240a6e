package qrtokensdk

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSDKClient_TrimsSlash(t *testing.T) {
	t.Parallel()

	c := NewSDKClient("http://localhost:3000/")
	require.Equal(t, "http://localhost:3000", c.BaseURL)
	require.Equal(t, "http://localhost:3000/qrtoken", c.url("/qrtoken"))
	require.Zero(t, c.HTTPClient.Timeout)
}

func TestCreateQRToken_ReturnsRawResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"ok", http.StatusOK, `{"id": 7}`},
		{"created", http.StatusCreated, `{"success":true}`},
		{"server error", http.StatusInternalServerError, `oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody []byte
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotBody, _ = io.ReadAll(r.Body)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
			resp, err := NewSDKClient(srv.URL).CreateQRToken(context.Background(), CreateQRTokenRequest{
				Token:      "abc",
				EmployeeID: 1,
				CreatedAt:  created,
				ExpiresAt:  created.Add(time.Hour),
				QRCode:     "cXI=",
			})
			require.NoError(t, err)
			require.Equal(t, tt.status, resp.StatusCode)
			require.Equal(t, tt.body, string(resp.Body))

			require.JSONEq(t, `{
				"token": "abc",
				"empleado_id": 1,
				"creado_en": "2025-01-02T03:04:05Z",
				"expira_en": "2025-01-02T04:04:05Z",
				"usado": false,
				"qrCode": "cXI="
			}`, string(gotBody))
		})
	}
}

func TestCreateQRToken_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	resp, err := NewSDKClient(base).CreateQRToken(context.Background(), CreateQRTokenRequest{Token: "abc"})
	require.Nil(t, resp)

	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, http.MethodPost, terr.Method)
	require.Equal(t, base+"/qrtoken", terr.URL)
	require.NotNil(t, errors.Unwrap(err))
}

func TestDecodeJSON_APIErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		want     error
		wantDesc string
	}{
		{"structured not found", http.StatusNotFound, `{"error":"not_found","error_description":"gone"}`, ErrNotFound, "gone"},
		{"structured conflict", http.StatusConflict, `{"error":"conflict","error_description":"dup"}`, ErrConflict, "dup"},
		{"plain 404", http.StatusNotFound, `nope`, ErrNotFound, "HTTP 404: Not Found"},
		{"plain 400", http.StatusBadRequest, ``, ErrInvalidRequest, "HTTP 400: Bad Request"},
		{"plain 502", http.StatusBadGateway, `<html>`, ErrServerError, "HTTP 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			_, err := NewSDKClient(srv.URL).GetQRToken(context.Background(), 1)
			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.wantDesc, apiErr.Description)
		})
	}
}

func TestRequestPaths(t *testing.T) {
	t.Parallel()

	var gotMethod, gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		switch {
		case r.URL.Path == "/qrtoken/validate":
			_, _ = w.Write([]byte(`true`))
		case r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"success":true,"message":"deleted"}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"data":null}`))
		}
	}))
	t.Cleanup(srv.Close)

	c := NewSDKClient(srv.URL)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() error
		wantMethod string
		wantURI    string
	}{
		{"get", func() error { _, err := c.GetQRToken(ctx, 12); return err }, http.MethodGet, "/qrtoken/12"},
		{"by token", func() error { _, err := c.FindByToken(ctx, "a/b"); return err }, http.MethodGet, "/qrtoken/by-token/a%2Fb"},
		{"validate", func() error { _, err := c.ValidateToken(ctx, "a b"); return err }, http.MethodGet, "/qrtoken/validate?token=a+b"},
		{"mark used", func() error { _, err := c.MarkUsed(ctx, 3); return err }, http.MethodPatch, "/qrtoken/3/mark-used"},
		{"delete", func() error { return c.DeleteQRToken(ctx, 4) }, http.MethodDelete, "/qrtoken/4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			require.Equal(t, tt.wantMethod, gotMethod)
			require.Equal(t, tt.wantURI, gotURI)
		})
	}
}
