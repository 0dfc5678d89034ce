package models

import (
	"errors"
	"fmt"
)

// ErrorKind is a stable, caller-facing failure category. It never carries
// storage-engine detail.
type ErrorKind string

const (
	ErrorKindMissingField        ErrorKind = "MISSING_FIELD"
	ErrorKindNotFound            ErrorKind = "NOT_FOUND"
	ErrorKindCapacityExceeded    ErrorKind = "CAPACITY_EXCEEDED"
	ErrorKindInvalidPromo        ErrorKind = "INVALID_PROMO"
	ErrorKindTransactionConflict ErrorKind = "TRANSACTION_CONFLICT"
	ErrorKindInternal            ErrorKind = "INTERNAL"
)

// BookingError is the typed error returned across the service boundary.
type BookingError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewMissingFieldError(message string) *BookingError {
	return &BookingError{Kind: ErrorKindMissingField, Message: message}
}

func NewNotFoundError(resource string) *BookingError {
	return &BookingError{Kind: ErrorKindNotFound, Message: resource + " not found"}
}

func NewCapacityExceededError() *BookingError {
	return &BookingError{Kind: ErrorKindCapacityExceeded, Message: "not enough available capacity in this slot"}
}

func NewInvalidPromoError(message string) *BookingError {
	return &BookingError{Kind: ErrorKindInvalidPromo, Message: message}
}

func NewTransactionConflictError(err error) *BookingError {
	return &BookingError{Kind: ErrorKindTransactionConflict, Message: "booking conflicted with a concurrent request, please retry", Err: err}
}

func NewInternalError(err error) *BookingError {
	return &BookingError{Kind: ErrorKindInternal, Message: "an internal error occurred", Err: err}
}

// KindOf extracts the error kind, defaulting to INTERNAL for untyped errors.
func KindOf(err error) ErrorKind {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ErrorKindInternal
}

// MessageOf returns the caller-safe message for an error. Untyped errors
// collapse to a generic message so storage detail never reaches the caller.
func MessageOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Message
	}
	return "an internal error occurred"
}
