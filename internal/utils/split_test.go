package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{"single name", "auth", []string{"auth"}},
		{"pipe list", "auth|redis|mailer", []string{"auth", "redis", "mailer"}},
		{"rule expression", "required|min:3", []string{"required", "min:3"}},
		{"empty string", "", []string{""}},
		{"string slice passes through", []string{"a", "b|c"}, []string{"a", "b|c"}},
		{"any slice", []any{"a", 1, true}, []string{"a", "1", "true"}},
		{"unsupported", 42, nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.input))
		})
	}
}

func TestSplit_Idempotent(t *testing.T) {
	inputs := []any{"a|b|c", "", "single", []string{"x", "y"}, []any{"p", "q"}, 3.14}

	for _, in := range inputs {
		once := Split(in)
		assert.Equal(t, once, Split(once), "input %v", in)
	}
}
