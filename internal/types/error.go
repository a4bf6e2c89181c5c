package types

import (
	"errors"
	"fmt"
)

// CustomError is an error carrying the HTTP status and error type returned to clients
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Sentinels matched by the domain errors below through errors.Is
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("E_VERSION")
	ErrNotFound   = errors.New("not found")
)

// ValidationError rejects an operation because of a missing or malformed field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConflictError reports a stale record version on update
type ConflictError struct {
	Table   string
	ID      uint64
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NotFoundError reports an operation addressed to a row that does not exist
type NotFoundError struct {
	Table string
	ID    uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Table, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
