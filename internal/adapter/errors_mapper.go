package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/owenmerry/skyscanner-flight-search-sub002/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrServiceUnavailable, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// envelope is the wire form of a snapshot. statusCode and code only appear
// on error-shaped bodies.
type envelope struct {
	models.SearchResult
	StatusCode *int `json:"statusCode,omitempty"`
	Code       any  `json:"code,omitempty"`
}

// decodeResult applies the transient-failure predicate to a 2xx body: an
// empty or null body, any statusCode other than 200 (0 included) or any
// non-null code field ("", 0 and false included) is an error payload.
func decodeResult(body []byte) (models.SearchResult, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return models.SearchResult{}, ErrEmptyBody
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if env.StatusCode != nil && *env.StatusCode != http.StatusOK {
		return models.SearchResult{}, fmt.Errorf("%w: statusCode %d", ErrErrorPayload, *env.StatusCode)
	}
	if env.Code != nil {
		return models.SearchResult{}, fmt.Errorf("%w: code %v", ErrErrorPayload, env.Code)
	}

	return env.SearchResult, nil
}
