package qrtokensdk

import (
	"net/http"
	"strings"
)

// SDKClient is a client for the QR token backend.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the backend at baseURL. The underlying
// http.Client uses its default settings, which means no request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}
