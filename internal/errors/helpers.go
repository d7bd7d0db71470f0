package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsItemUnavailable checks if an error is an item unavailable error
func IsItemUnavailable(err error) bool {
	return GetCode(err) == CodeItemUnavailable
}

// IsInvalidAction checks if an error is an invalid action error
func IsInvalidAction(err error) bool {
	return GetCode(err) == CodeInvalidAction
}

// IsNoAttributePoints checks if an error is a no attribute points error
func IsNoAttributePoints(err error) bool {
	return GetCode(err) == CodeNoAttributePoints
}

// IsRecoverable reports whether err is one of the game rule rejections that
// leave state untouched.
func IsRecoverable(err error) bool {
	switch GetCode(err) {
	case CodeItemUnavailable, CodeInvalidAction, CodeNoAttributePoints:
		return true
	default:
		return false
	}
}
