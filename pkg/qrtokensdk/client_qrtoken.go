package qrtokensdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// CreateQRToken sends exactly one POST /qrtoken and returns the response
// verbatim, including non-2xx statuses. Only a failure to get any response
// at all is returned as an error (*TransportError).
func (c *SDKClient) CreateQRToken(ctx context.Context, req CreateQRTokenRequest) (*RawResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/qrtoken", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: c.url("/qrtoken"), Err: err}
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}, nil
}

// ListQRTokens returns every stored token, newest first.
func (c *SDKClient) ListQRTokens(ctx context.Context) ([]QRToken, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/qrtoken", nil)
	if err != nil {
		return nil, err
	}

	var out QRTokenListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetQRToken fetches a token by id. Returns ErrNotFound if it does not exist.
func (c *SDKClient) GetQRToken(ctx context.Context, id int64) (*QRToken, error) {
	return c.tokenRequest(ctx, http.MethodGet, idPath(id), nil)
}

// FindByToken looks a token up by its value. A miss returns (nil, nil).
func (c *SDKClient) FindByToken(ctx context.Context, token string) (*QRToken, error) {
	return c.tokenRequest(ctx, http.MethodGet, "/qrtoken/by-token/"+url.PathEscape(token), nil)
}

// ValidateToken reports whether token exists, is unused and has not expired.
// The server answers with a bare JSON boolean.
func (c *SDKClient) ValidateToken(ctx context.Context, token string) (bool, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/qrtoken/validate?token="+url.QueryEscape(token), nil)
	if err != nil {
		return false, err
	}

	var valid bool
	if err := decodeJSON(resp, &valid, http.StatusOK); err != nil {
		return false, err
	}
	return valid, nil
}

// UpdateQRToken applies a partial update.
func (c *SDKClient) UpdateQRToken(ctx context.Context, id int64, req UpdateQRTokenRequest) (*QRToken, error) {
	return c.tokenRequest(ctx, http.MethodPatch, idPath(id), req)
}

// MarkUsed flags a token as redeemed.
func (c *SDKClient) MarkUsed(ctx context.Context, id int64) (*QRToken, error) {
	return c.tokenRequest(ctx, http.MethodPatch, idPath(id)+"/mark-used", nil)
}

// DeleteQRToken removes a token.
func (c *SDKClient) DeleteQRToken(ctx context.Context, id int64) error {
	resp, err := c.doJSON(ctx, http.MethodDelete, idPath(id), nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

func (c *SDKClient) tokenRequest(ctx context.Context, method, path string, payload any) (*QRToken, error) {
	resp, err := c.doJSON(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var out QRTokenResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func idPath(id int64) string {
	return "/qrtoken/" + strconv.FormatInt(id, 10)
}
