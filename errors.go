package mailroutes

import (
	"errors"
	"fmt"

	"github.com/syncteam/mailroutes/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when a request is attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnauthorized is returned when the API key is rejected.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRouteNotFound is returned when a route does not exist.
	ErrRouteNotFound = errors.New("route not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrDecode is returned when a response body has an unexpected shape.
	ErrDecode = errors.New("failed to decode response")
)

// MailRoutesError is implemented by all errors this package returns for a
// failed request.
type MailRoutesError interface {
	error
	MailRoutesError() // marker method
}

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	// Body is the raw response body, kept for diagnostics.
	Body string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// MailRoutesError implements the MailRoutesError interface.
func (e *APIError) MailRoutesError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrRouteNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError is returned when the request could not be completed.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MailRoutesError implements the MailRoutesError interface.
func (e *NetworkError) MailRoutesError() {}

// DecodeError is returned when a successful response cannot be decoded.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// MailRoutesError implements the MailRoutesError interface.
func (e *DecodeError) MailRoutesError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:    netErr.Err,
			Method: netErr.Method,
			URL:    netErr.URL,
		}
	}

	var decodeErr *api.DecodeError
	if errors.As(err, &decodeErr) {
		return &DecodeError{
			Err:  decodeErr.Err,
			Body: decodeErr.Body,
		}
	}

	if errors.Is(err, api.ErrClientClosed) {
		return ErrClientClosed
	}

	return err
}
