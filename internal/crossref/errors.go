// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crossref

import "fmt"

// ErrorKind classifies a failed lookup for retry decisions.
type ErrorKind string

const (
	// TransientNetwork covers connection failures and timeouts. Retryable.
	TransientNetwork ErrorKind = "transient_network"

	// ServerError covers 5xx responses and 429 pushback. Retryable.
	ServerError ErrorKind = "server_error"

	// ClientError covers other 4xx responses. Not retryable.
	ClientError ErrorKind = "client_error"

	// MalformedResponse covers bodies that do not decode into the expected
	// shape. Not retryable.
	MalformedResponse ErrorKind = "malformed_response"
)

// Retryable reports whether a failure of this kind is worth another attempt.
func (k ErrorKind) Retryable() bool {
	return k == TransientNetwork || k == ServerError
}

// RequestError is a failed lookup with its taxonomy kind. Status is the
// HTTP status code when the failure was a non-2xx response, zero otherwise.
type RequestError struct {
	Kind   ErrorKind
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("crossref: %s: %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }
