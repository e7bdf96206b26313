package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Room errors
	ErrCodeInvalidRoomID   ErrorCode = "INVALID_ROOM_ID"
	ErrCodeRoomExists      ErrorCode = "ROOM_EXISTS"
	ErrCodeRoomNotFound    ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeInvalidStatus   ErrorCode = "INVALID_STATUS"
	ErrCodeCleaningBusy    ErrorCode = "CLEANING_IN_PROGRESS"
	ErrCodeInvalidFreq     ErrorCode = "INVALID_FREQUENCY"
	ErrCodeClassNotFound   ErrorCode = "ROOM_CLASS_NOT_FOUND"

	// Reservation errors
	ErrCodeInvalidDates       ErrorCode = "INVALID_DATES"
	ErrCodeReservationMissing ErrorCode = "RESERVATION_NOT_FOUND"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
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
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Room errors
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomClassNotFound  = errors.New("room class not found")
	ErrCleaningInProgress = errors.New("cleaning already in progress")

	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationCancelled = errors.New("reservation already cancelled")
	ErrReservationCompleted = errors.New("reservation already completed")

	// Restaurant errors
	ErrKitchenOrderNotFound = errors.New("kitchen order not found")
	ErrTableNotFound        = errors.New("table not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
