package utils

import (
	"net/http"
	"time"

	"experio/internal/models"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type Meta struct {
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Total      int64           `json:"total,omitempty"`
	Count      int             `json:"count,omitempty"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func SuccessResponseWithMeta(c *gin.Context, message string, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Meta:      meta,
		Timestamp: time.Now(),
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, APIResponse{
		Status: StatusError,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now(),
	})
}

func ErrorResponseWithDetails(c *gin.Context, statusCode int, code, message string, details map[string]string) {
	c.JSON(statusCode, APIResponse{
		Status: StatusError,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
	})
}

func ValidationErrorResponse(c *gin.Context, errors map[string]string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, string(models.ErrorKindMissingField), ErrValidationFailed, errors)
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, string(models.ErrorKindNotFound), resource+" not found")
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func TooManyRequestsResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", ErrTooManyRequests)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, string(models.ErrorKindInternal), ErrInternalServer)
}

// BookingErrorResponse maps a service error to its HTTP status using the
// stable error kind. Internal detail never reaches the caller.
func BookingErrorResponse(c *gin.Context, err error) {
	kind := models.KindOf(err)
	ErrorResponse(c, httpStatusForKind(kind), string(kind), models.MessageOf(err))
}

func httpStatusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrorKindMissingField:
		return http.StatusBadRequest
	case models.ErrorKindNotFound:
		return http.StatusNotFound
	case models.ErrorKindCapacityExceeded, models.ErrorKindInvalidPromo:
		return http.StatusUnprocessableEntity
	case models.ErrorKindTransactionConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
