package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrAlreadyExists
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "resource not found",
	ErrInvalidRequest:  "invalid input",
	ErrUnauthorize:     "unauthorize request",
	ErrAlreadyExists:   "resource already exists",
	ErrTooManyRequests: "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrAlreadyExists:   http.StatusConflict,
	ErrTooManyRequests: http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrAlreadyExists:   "0005",
	ErrTooManyRequests: "0006",
}
