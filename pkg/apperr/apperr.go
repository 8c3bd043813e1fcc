// Package apperr defines the typed errors returned by repositories and
// services. Controllers translate them into HTTP responses at the boundary;
// nothing below the controller layer knows about status codes.
//
//	if rec == nil {
//	    return apperr.New(op, apperr.NotFound, apperr.CodeProductNotFound,
//	        fmt.Sprintf("Product with ID %d does not exist", id))
//	}
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the transport layer.
type Kind uint8

const (
	Unexpected Kind = iota
	Validation
	NotFound
	Conflict
	Unauthorized
	Forbidden
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unexpected"
	}
}

// Code is a stable, machine-readable reason.
type Code string

const (
	CodeProductNotFound        Code = "product_not_found"
	CodeInsufficientStock      Code = "insufficient_stock"
	CodeInventoryAlreadyExists Code = "inventory_already_exists"
	CodeOrderNotFound          Code = "order_not_found"
	CodeNothingUpdated         Code = "nothing_updated"
	CodeDuplicateRequest       Code = "duplicate_request"
	CodeDuplicate              Code = "duplicate"
	CodeInUse                  Code = "in_use"
	CodeNotFound               Code = "not_found"
	CodeInvalidCredentials     Code = "invalid_credentials"
	CodeInvalidToken           Code = "invalid_token"
	CodeInvalidInput           Code = "invalid_input"
)

// Error is a domain error with enough context to log and to answer a client.
type Error struct {
	Op      string
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error without an underlying cause.
func New(op string, kind Kind, code Code, message string) *Error {
	return &Error{Op: op, Kind: kind, Code: code, Message: message}
}

// Wrap attaches a cause to a new Error.
func Wrap(op string, kind Kind, code Code, message string, err error) *Error {
	return &Error{Op: op, Kind: kind, Code: code, Message: message, Err: err}
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns Unexpected for any error that is not an *Error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return Unexpected
}

// CodeOf returns "" for any error that is not an *Error.
func CodeOf(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// HTTPStatus maps a Kind onto the status codes the API has always used:
// conflicts are reported as 400 alongside validation failures.
func HTTPStatus(k Kind) int {
	switch k {
	case Validation, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Convenience constructors used across repositories.

func NotFoundf(op string, code Code, format string, args ...any) *Error {
	return New(op, NotFound, code, fmt.Sprintf(format, args...))
}

func Conflictf(op string, code Code, format string, args ...any) *Error {
	return New(op, Conflict, code, fmt.Sprintf(format, args...))
}

func Invalidf(op string, code Code, format string, args ...any) *Error {
	return New(op, Validation, code, fmt.Sprintf(format, args...))
}
