package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork  = errors.New("order backend could not be reached")
	ErrServer   = errors.New("order backend returned an error")
	ErrNotFound = errors.New("record not found in order backend")
)

// StatusError keeps the status code of a non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}

	return ErrServer
}
