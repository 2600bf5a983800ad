package schema

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrInvalidFieldName  ErrorKind = "invalid_field_name"
	ErrDuplicateField    ErrorKind = "duplicate_field"
	ErrUnknownField      ErrorKind = "unknown_field"
	ErrFieldTypeMismatch ErrorKind = "field_type_mismatch"
	ErrSchema            ErrorKind = "schema"
	ErrIO                ErrorKind = "io"
	ErrSQL               ErrorKind = "sql"
	ErrNotFound          ErrorKind = "not_found"
	ErrQueryParse        ErrorKind = "query_parse"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	base := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Field != "" {
		base = fmt.Sprintf("%s (field=%s)", base, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func New(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func InvalidFieldNameError(name string) *Error {
	return &Error{Kind: ErrInvalidFieldName, Message: "field name must match [A-Za-z0-9_]+", Field: name}
}

func DuplicateFieldError(name string) *Error {
	return &Error{Kind: ErrDuplicateField, Message: "field already registered", Field: name}
}

func UnknownFieldError(field string) *Error {
	return &Error{Kind: ErrUnknownField, Message: "unknown field", Field: field}
}

func TypeMismatch(field, msg string) *Error {
	return &Error{Kind: ErrFieldTypeMismatch, Field: field, Message: msg}
}

func NotFoundError(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
