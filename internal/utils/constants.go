package utils

import "time"

// Application constants
const (
	AppName    = "Experio"
	AppVersion = "1.0.0"
)

// Pagination
const (
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Cache TTLs
const (
	ExperienceCacheTTL = 10 * time.Minute
)

// HTTP status messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error messages
const (
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrNotFound         = "not found"
	ErrValidationFailed = "validation failed"
	ErrTooManyRequests  = "too many requests"
)

// DefaultBookingQuantity is used when the request omits a quantity.
const DefaultBookingQuantity = 1
