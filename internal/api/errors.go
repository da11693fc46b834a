package api

import (
	"fmt"
	"net/http"
)

// RequestError indicates the request never produced a usable response:
// the transport failed or the server answered with a non-success status.
type RequestError struct {
	Status int // zero when the transport failed before a response
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.Status))
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError indicates the server answered successfully but the body
// could not be parsed into the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
