// Package api provides HTTP client functionality for the Mailgun routes API.
// It handles authentication, request construction, form encoding and response
// decoding. Dry-run gating is not done here; callers decide whether a
// mutating call reaches this package at all.
//
// # Requests
//
// Every request is built by a single request builder. Relative paths are
// resolved against the base URL ([DefaultBaseURL] unless overridden); paths
// that already start with "https://" are used verbatim. Each request carries
// HTTP Basic auth with the username "api" and the API key as password, and
// the fixed [UserAgent] header. The API key is held as a sealed
// [crypto.Secret] and only exposed while the Authorization header is set.
//
// # No retries
//
// The client issues exactly one request per call. Failed requests are not
// retried and rate limits are not handled; both are left to the caller.
//
// # Error Handling
//
// Failures are reported as one of three types:
//
//   - [NetworkError]: the request could not be sent or the response body
//     could not be read.
//   - [APIError]: the server answered with a non-2xx status. The status code
//     and response body are preserved.
//   - [DecodeError]: a 2xx response body was not the expected JSON shape.
//
// [APIError] matches [ErrUnauthorized], [ErrRouteNotFound] and
// [ErrRateLimited] through errors.Is.
package api
