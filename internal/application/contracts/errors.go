package contracts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrContractNotFound  = errors.New("contract not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyImmediate  = errors.New("contract is already immediate-need")
)

// ValidationError carries a field-level error set. Nothing is written when
// validation fails; the coordinator never starts its transaction.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
