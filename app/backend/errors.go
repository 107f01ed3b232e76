package backend

import (
	"errors"
	"fmt"
)

// TransportError is a network level failure, the request got no response
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-success http status or an explicit error flag in the response body.
// Message is the server supplied message, empty if the server sent none.
type ServerError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server error, status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: server error, status %d: %s", e.Op, e.Status, e.Message)
}

// DecodeError is a malformed or unexpected response body
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: can't decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UserMessage returns the server supplied message carried by err, or fallback if there is none
func UserMessage(err error, fallback string) string {
	var srvErr *ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		return srvErr.Message
	}
	return fallback
}
