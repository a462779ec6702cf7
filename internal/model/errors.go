package model

import "errors"

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrTimeout is returned when a result did not arrive in time.
	ErrTimeout = errors.New("timed out")
	// ErrUnknownOperation is returned when an operation name is not registered.
	ErrUnknownOperation = errors.New("unknown operation")
)
