package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeBlocked      ErrorCode = "BLOCKED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeNotAvailable ErrorCode = "NOT_AVAILABLE"

	// Database errors
	ErrCodeDBError   ErrorCode = "DB_ERROR"
	ErrCodeIntegrity ErrorCode = "INTEGRITY_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Accommodation errors
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrAvailabilityNotFound  = errors.New("availability not found")
	ErrAvailabilityOverlap   = errors.New("availability overlaps an existing interval")
	ErrAvailabilityBlocked   = errors.New("availability has active reservations")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotReservationOwner = errors.New("caller does not own this reservation")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// Pricing errors
	ErrRangeNotCovered = errors.New("date range is not fully covered")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidRange    = errors.New("invalid date range")
)
