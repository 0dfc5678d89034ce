package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindNotFound, KindOf(NewNotFoundError("slot")))
	assert.Equal(t, ErrorKindCapacityExceeded, KindOf(NewCapacityExceededError()))
	assert.Equal(t, ErrorKindInvalidPromo, KindOf(NewInvalidPromoError("expired")))
	assert.Equal(t, ErrorKindMissingField, KindOf(NewMissingFieldError("missing")))

	// Wrapped typed errors keep their kind.
	wrapped := fmt.Errorf("create booking: %w", NewCapacityExceededError())
	assert.Equal(t, ErrorKindCapacityExceeded, KindOf(wrapped))

	// Untyped errors collapse to INTERNAL.
	assert.Equal(t, ErrorKindInternal, KindOf(errors.New("connection reset")))
}

func TestMessageOfHidesInternalDetail(t *testing.T) {
	storage := errors.New("mongo: socket closed on host db-3")

	assert.Equal(t, "an internal error occurred", MessageOf(storage))
	assert.Equal(t, "an internal error occurred", MessageOf(NewInternalError(storage)))
	assert.NotContains(t, MessageOf(NewInternalError(storage)), "mongo")

	assert.Equal(t, "slot not found", MessageOf(NewNotFoundError("slot")))
}

func TestBookingErrorUnwrap(t *testing.T) {
	cause := errors.New("write conflict")
	err := NewTransactionConflictError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ErrorKindTransactionConflict, KindOf(err))
}
