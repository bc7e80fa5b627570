package booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks a write rejected because of missing or malformed
	// fields, or a show naming an artist or venue that does not exist.
	ErrValidation = errors.New("validation failed")

	// ErrIntegrityFault marks a show whose artist or venue existed when it
	// was created but cannot be resolved now.
	ErrIntegrityFault = errors.New("integrity fault")
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Problem string `json:"problem"`
}

// ValidationError lists every field problem found in a write request.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Fields []FieldError
	cause  error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Problem)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.cause }

// IntegrityFaultError names an orphaned show and the entity it points at.
type IntegrityFaultError struct {
	ShowID      uint64
	MissingKind Kind
	MissingID   uint64
}

func (e *IntegrityFaultError) Error() string {
	return fmt.Sprintf("integrity fault: show %d references missing %s %d", e.ShowID, e.MissingKind, e.MissingID)
}

func (e *IntegrityFaultError) Is(target error) bool { return target == ErrIntegrityFault }
