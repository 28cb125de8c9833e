package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "flight-search-client/1.0"

// HTTPClient embeds *resty.Client so callers use the resty API directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get("https://api.example.com/create")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that asks for JSON and
// identifies itself with the application user agent. Resty's own retry is
// left disabled; retries are owned by the search client.
func NewHTTPClient() *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: c}
}
