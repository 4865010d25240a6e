package qrtokensdk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339 utc", "2024-05-01T10:00:00Z", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-05-01T12:00:00+02:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"zoneless", "2024-05-01T10:00:00", time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)},
		{"zoneless micros", "2024-05-01T10:00:00.123456", time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.Local)},
		{"date only", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			require.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "yesterday", "2024-13-01T00:00:00", "01/05/2024"} {
		_, err := ParseTimestamp(in)
		require.Error(t, err, in)
	}
}

func TestCreateQRTokenRequest_UnmarshalZoneless(t *testing.T) {
	t.Parallel()

	var req CreateQRTokenRequest
	err := json.Unmarshal([]byte(`{
		"token": "abc",
		"empleado_id": 1,
		"creado_en": "2024-05-01T10:00:00.500000",
		"expira_en": "2024-05-01T11:00:00Z",
		"qrCode": "aGk="
	}`), &req)
	require.NoError(t, err)

	require.Equal(t, "abc", req.Token)
	require.Equal(t, int64(1), req.EmployeeID)
	require.True(t, req.CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.Local)))
	require.True(t, req.ExpiresAt.Equal(time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)))

	require.Error(t, json.Unmarshal([]byte(`{"creado_en": "soon"}`), &req))
}

func TestUpdateQRTokenRequest_UnmarshalPartial(t *testing.T) {
	t.Parallel()

	var req UpdateQRTokenRequest
	require.NoError(t, json.Unmarshal([]byte(`{"expira_en": "2024-05-01T11:00:00", "usado": true}`), &req))

	require.Nil(t, req.CreatedAt)
	require.NotNil(t, req.ExpiresAt)
	require.True(t, req.ExpiresAt.Equal(time.Date(2024, 5, 1, 11, 0, 0, 0, time.Local)))
	require.NotNil(t, req.Used)
	require.True(t, *req.Used)
}
