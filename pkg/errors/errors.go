package pkgerrors

import (
	"errors"
	"fmt"
)

const (
	CodeBadEnvelope      = -2001
	CodeDuplicateOrder   = -2002
	CodeStoreUnavailable = -2003
	CodePublishFailed    = -2004
	CodeTerminalState    = -2005
	CodeUnknown          = -9999
)

type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadEnvelopeError(err error) *AppError {
	return &AppError{
		Code:    CodeBadEnvelope,
		Message: "malformed event envelope",
		Err:     err,
	}
}

func NewDuplicateOrderError(err error) *AppError {
	return &AppError{
		Code:    CodeDuplicateOrder,
		Message: "payment already exists for order",
		Err:     err,
	}
}

func NewStoreUnavailableError(err error) *AppError {
	return &AppError{
		Code:    CodeStoreUnavailable,
		Message: "payment store unavailable",
		Err:     err,
	}
}

func NewPublishFailedError(err error) *AppError {
	return &AppError{
		Code:    CodePublishFailed,
		Message: "event publish failed",
		Err:     err,
	}
}

func NewTerminalStateError(err error) *AppError {
	return &AppError{
		Code:    CodeTerminalState,
		Message: "payment already in terminal state",
		Err:     err,
	}
}

func IsBadEnvelopeError(err error) bool {
	return GetErrorCode(err) == CodeBadEnvelope
}

func IsDuplicateOrderError(err error) bool {
	return GetErrorCode(err) == CodeDuplicateOrder
}

func IsStoreUnavailableError(err error) bool {
	return GetErrorCode(err) == CodeStoreUnavailable
}

func IsPublishFailedError(err error) bool {
	return GetErrorCode(err) == CodePublishFailed
}

func IsTerminalStateError(err error) bool {
	return GetErrorCode(err) == CodeTerminalState
}

func GetErrorCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}
