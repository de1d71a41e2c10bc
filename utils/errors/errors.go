package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/model"
)

type CustomError struct {
	errType   constant.ErrorType
	detail    string
	cause     error
	conflicts []model.Conflict
}

func (c CustomError) Error() string {
	msg := constant.ErrorTypeMessage[c.errType]
	if c.detail != "" {
		msg += ": " + c.detail
	}
	return msg
}

func (c CustomError) Unwrap() error {
	return c.cause
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Message() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) Detail() string {
	return c.detail
}

func (c CustomError) Conflicts() []model.Conflict {
	return c.conflicts
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// WithConflicts attaches the conflicts that caused the error.
func (c CustomError) WithConflicts(conflicts []model.Conflict) CustomError {
	c.conflicts = conflicts
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func NewCustomError(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

// Wrap keeps cause in the chain of a typed error.
func Wrap(errorType constant.ErrorType, cause error, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
		cause:   cause,
	}
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.errType == errorType
	}
	return false
}

// AsCustomError returns err as a CustomError, or an internal one wrapping it.
func AsCustomError(err error) CustomError {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	return Wrap(constant.ErrInternal, err, "")
}
