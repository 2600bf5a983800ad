package index

import "github.com/ministore/fieldstore/schema"

// Re-export error types and functions so callers of this package do not
// need to import schema for error handling.
type Error = schema.Error
type ErrorKind = schema.ErrorKind

const (
	ErrInvalidFieldName  = schema.ErrInvalidFieldName
	ErrDuplicateField    = schema.ErrDuplicateField
	ErrUnknownField      = schema.ErrUnknownField
	ErrFieldTypeMismatch = schema.ErrFieldTypeMismatch
	ErrSchema            = schema.ErrSchema
	ErrIO                = schema.ErrIO
	ErrSQL               = schema.ErrSQL
	ErrNotFound          = schema.ErrNotFound
	ErrQueryParse        = schema.ErrQueryParse
)

func Wrap(kind ErrorKind, msg string, cause error) *Error { return schema.Wrap(kind, msg, cause) }
func IsKind(err error, kind ErrorKind) bool               { return schema.IsKind(err, kind) }
