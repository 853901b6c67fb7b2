package backend

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected backend status")
	ErrDecode           = errors.New("could not decode backend response")
)

type StatusError struct {
	Endpoint   string
	StatusCode int
}

type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s answered with status %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode backend %s response: %s", e.Endpoint, e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
