// README: Error taxonomy for model calls (transport, remote, envelope, schema).
package ai

import (
	"errors"
	"fmt"
)

// ErrEmptyModelResponse is returned when the model reply contains no usable text.
var ErrEmptyModelResponse = errors.New("model returned an empty response")

// NetworkError wraps a transport failure where no response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError reports a non-2xx response from the model endpoint.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a malformed transport envelope (the outer completions JSON),
// as opposed to a schema violation of the inner trip JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError reports that the model's reply text was not a JSON document matching
// the required trip shape. Raw carries the reply for diagnostics.
type SchemaError struct {
	Raw string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("trip JSON does not match required shape: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
