package qrtokensdk

import (
	"encoding/json"
	"fmt"
	"time"
)

// localLayout is ISO-8601 without a zone offset, as Python's isoformat()
// produces for naive datetimes.
const localLayout = "2006-01-02T15:04:05.999999999"

// ParseTimestamp parses an ISO-8601 datetime. RFC 3339 values keep their
// offset. Values without an offset are read in the local zone and bare dates
// as UTC midnight, matching how JavaScript's Date interprets them.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(localLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 datetime %q", s)
}

// isoTime decodes any form ParseTimestamp accepts.
type isoTime struct {
	time.Time
}

func (t *isoTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// UnmarshalJSON accepts creado_en and expira_en in any ISO-8601 form.
func (r *CreateQRTokenRequest) UnmarshalJSON(b []byte) error {
	type alias CreateQRTokenRequest
	aux := struct {
		*alias
		CreatedAt isoTime `json:"creado_en"`
		ExpiresAt isoTime `json:"expira_en"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	r.CreatedAt = aux.CreatedAt.Time
	r.ExpiresAt = aux.ExpiresAt.Time
	return nil
}

// UnmarshalJSON accepts creado_en and expira_en in any ISO-8601 form.
func (r *UpdateQRTokenRequest) UnmarshalJSON(b []byte) error {
	type alias UpdateQRTokenRequest
	aux := struct {
		*alias
		CreatedAt *isoTime `json:"creado_en"`
		ExpiresAt *isoTime `json:"expira_en"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if aux.CreatedAt != nil && !aux.CreatedAt.IsZero() {
		r.CreatedAt = &aux.CreatedAt.Time
	}
	if aux.ExpiresAt != nil && !aux.ExpiresAt.IsZero() {
		r.ExpiresAt = &aux.ExpiresAt.Time
	}
	return nil
}
