package validation

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrUnknownRule is returned when a rule set names a rule this package
	// does not implement.
	ErrUnknownRule = errors.New("unknown validation rule")
	// ErrInvalidRule is returned for a known rule with bad parameters,
	// e.g. "between:1".
	ErrInvalidRule = errors.New("invalid validation rule")
	// ErrFailed is wrapped by [*Errors].
	ErrFailed = errors.New("validation failed")
)

// FieldError describes one violated rule.
type FieldError struct {
	// Path is the field path, dotted for nested maps ("user.email").
	Path string `json:"path"`

	// Message is the localized, human-readable description.
	Message string `json:"message"`

	// Kind is the machine-readable rule name, e.g. "required" or "min".
	Kind string `json:"type"`

	// Params holds the rule parameters, e.g. ["3"] for "min:3".
	Params []string `json:"-"`

	// variant selects the message for size-like rules:
	// "numeric", "string" or "array".
	variant string
}

// Errors is the failure result of Validate. Fields are ordered by path,
// then by the order of the rules within the field.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Message)
	}
	return ErrFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e *Errors) Unwrap() error {
	return ErrFailed
}

// ByField groups messages by field path, preserving rule order.
func (e *Errors) ByField() map[string][]string {
	out := make(map[string][]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Path] = append(out[f.Path], f.Message)
	}
	return out
}

// Paths returns the sorted set of violating field paths.
func (e *Errors) Paths() []string {
	return slices.Sorted(maps.Keys(e.ByField()))
}
