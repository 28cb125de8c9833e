package adapter

import "errors"

// Failures where no usable response was received.
var (
	// ErrRequestFailed wraps transport failures: DNS, connection resets,
	// timeouts and context cancellation.
	ErrRequestFailed = errors.New("flight api request failed")

	// ErrDecodeResponse is returned when the body is not valid JSON for a
	// search snapshot.
	ErrDecodeResponse = errors.New("error decoding flight api response")

	// ErrInvalidBaseURL is returned by [NewHTTPFlightAPI] for an unusable
	// API address.
	ErrInvalidBaseURL = errors.New("invalid flight api address")
)

// Failures where the API answered but the answer is an error.
var (
	// ErrEmptyBody is returned when the body is empty or JSON null.
	ErrEmptyBody = errors.New("flight api returned an empty body")

	// ErrErrorPayload is returned when the body carries an error marker: a
	// non-200 statusCode field or a code field.
	ErrErrorPayload = errors.New("flight api returned an error payload")

	// ErrUnexpectedStatus is returned for non-2xx HTTP responses.
	ErrUnexpectedStatus = errors.New("flight api returned unexpected http status")
)

// HTTP status specific errors, always joined with [ErrUnexpectedStatus].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// IsResponseFailure reports whether err means the API answered with an error,
// as opposed to no usable answer arriving at all.
func IsResponseFailure(err error) bool {
	return errors.Is(err, ErrEmptyBody) ||
		errors.Is(err, ErrErrorPayload) ||
		errors.Is(err, ErrUnexpectedStatus)
}
