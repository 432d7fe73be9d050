package domain

import (
	"errors"
	"sort"
	"strings"
)

// Ошибки, которые use cases возвращают наружу; адаптеры сопоставляют их через errors.Is
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyExists   = errors.New("property already exists")
	ErrValidation       = errors.New("validation failed")
)

// ValidationError описывает ошибки по полям. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
