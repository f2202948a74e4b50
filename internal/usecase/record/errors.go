package record

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an identifier that does
// not exist in the store.
var ErrNotFound = errors.New("record not found")

// FieldError ties one validation failure to the field that caused it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field failure of one request.
// The operation that produced it performed no write.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
