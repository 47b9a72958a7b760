package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NoViolations(t *testing.T) {
	data := map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
		"age":   float64(30),
		"tags":  []any{"a", "b"},
	}
	rules := Rules{
		"name":  "required|min:3|max:64",
		"email": "required|email",
		"age":   []string{"integer", "between:18,130"},
		"tags":  "array|min:1",
	}

	assert.NoError(t, Validate(data, rules))
}

func TestValidate_Violations(t *testing.T) {
	data := map[string]any{
		"name":  "Al",
		"email": "not-an-email",
	}
	rules := Rules{
		"name":     "required|min:3",
		"email":    "required|email",
		"password": "required",
	}

	err := Validate(data, rules)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailed)

	var verrs *Errors
	require.True(t, errors.As(err, &verrs))

	assert.Equal(t, map[string][]string{
		"email":    {"The email format is invalid."},
		"name":     {"The name must be at least 3 characters."},
		"password": {"The password field is required."},
	}, verrs.ByField())
	assert.Equal(t, []string{"email", "name", "password"}, verrs.Paths())

	kinds := make([]string, 0, len(verrs.Fields))
	for _, f := range verrs.Fields {
		kinds = append(kinds, f.Kind)
	}
	assert.Equal(t, []string{"email", "min", "required"}, kinds)
}

func TestValidate_RuleOrderWithinField(t *testing.T) {
	err := Validate(map[string]any{"code": "a!"}, Rules{"code": "alpha_num|min:3"})

	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Fields, 2)
	assert.Equal(t, "alpha_num", verrs.Fields[0].Kind)
	assert.Equal(t, "min", verrs.Fields[1].Kind)
}

func TestValidate_EmptyValuesSkipOptionalRules(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{name: "absent", data: map[string]any{}},
		{name: "null", data: map[string]any{"email": nil}},
		{name: "empty string", data: map[string]any{"email": ""}},
		{name: "whitespace", data: map[string]any{"email": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Validate(tt.data, Rules{"email": "email|min:5"}))

			err := Validate(tt.data, Rules{"email": "required|email"})
			var verrs *Errors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs.Fields, 1)
			assert.Equal(t, "required", verrs.Fields[0].Kind)
		})
	}
}

func TestValidate_RequiredAcceptsZeroValues(t *testing.T) {
	data := map[string]any{"count": float64(0), "enabled": false}
	assert.NoError(t, Validate(data, Rules{"count": "required", "enabled": "required|boolean"}))
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name  string
		value any
		rule  string
		ok    bool
	}{
		{name: "email ok", value: "a@b.io", rule: "email", ok: true},
		{name: "url ok", value: "https://example.com/x", rule: "url", ok: true},
		{name: "url bad", value: "example", rule: "url", ok: false},
		{name: "alpha ok", value: "abc", rule: "alpha", ok: true},
		{name: "alpha bad", value: "ab1", rule: "alpha", ok: false},
		{name: "alpha_dash ok", value: "a-b_c1", rule: "alpha_dash", ok: true},
		{name: "alpha_dash bad", value: "a b", rule: "alpha_dash", ok: false},
		{name: "numeric number", value: float64(1.5), rule: "numeric", ok: true},
		{name: "numeric string", value: "42", rule: "numeric", ok: true},
		{name: "numeric bad", value: "4x", rule: "numeric", ok: false},
		{name: "integer float", value: float64(4), rule: "integer", ok: true},
		{name: "integer fraction", value: float64(4.5), rule: "integer", ok: false},
		{name: "integer string", value: "12", rule: "integer", ok: true},
		{name: "boolean", value: true, rule: "boolean", ok: true},
		{name: "boolean bad", value: "nope", rule: "boolean", ok: false},
		{name: "string ok", value: "x", rule: "string", ok: true},
		{name: "string bad", value: float64(1), rule: "string", ok: false},
		{name: "array ok", value: []any{1}, rule: "array", ok: true},
		{name: "array bad", value: "x", rule: "array", ok: false},
		{name: "min numeric", value: float64(5), rule: "min:3", ok: true},
		{name: "min numeric bad", value: float64(2), rule: "min:3", ok: false},
		{name: "max string", value: "abcd", rule: "max:3", ok: false},
		{name: "size string", value: "abc", rule: "size:3", ok: true},
		{name: "size array bad", value: []any{1, 2}, rule: "size:3", ok: false},
		{name: "between ok", value: float64(20), rule: "between:18,130", ok: true},
		{name: "between bad", value: float64(10), rule: "between:18,130", ok: false},
		{name: "in ok", value: "b", rule: "in:a,b,c", ok: true},
		{name: "in number", value: float64(2), rule: "in:1,2", ok: true},
		{name: "in bad", value: "d", rule: "in:a,b,c", ok: false},
		{name: "min on bool fails", value: true, rule: "min:1", ok: false},
		{name: "min numeric string by value", value: "5", rule: "numeric|min:3", ok: true},
		{name: "min numeric string by value bad", value: "2", rule: "numeric|min:3", ok: false},
		{name: "max integer string by value", value: "100", rule: "integer|max:99", ok: false},
		{name: "between numeric string", value: "20", rule: "numeric|between:18,130", ok: true},
		{name: "size numeric string", value: "12", rule: "numeric|size:12", ok: true},
		{name: "numeric string without numeric rule uses length", value: "5", rule: "min:3", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(map[string]any{"field": tt.value}, Rules{"field": tt.rule})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verrs *Errors
			require.ErrorAs(t, err, &verrs)
			assert.Len(t, verrs.Fields, 1)
		})
	}
}

func TestValidate_CrossFieldRules(t *testing.T) {
	rules := Rules{"password": "required|confirmed", "repeat": "same:password"}

	assert.NoError(t, Validate(map[string]any{
		"password":              "secret1",
		"password_confirmation": "secret1",
		"repeat":                "secret1",
	}, rules))

	err := Validate(map[string]any{
		"password":              "secret1",
		"password_confirmation": "secret2",
		"repeat":                "other",
	}, rules)
	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string][]string{
		"password": {"The password confirmation does not match."},
		"repeat":   {"The repeat and password fields must match."},
	}, verrs.ByField())
}

func TestValidate_NestedPaths(t *testing.T) {
	data := map[string]any{
		"user": map[string]any{"email": "bad"},
		"a.b":  "literal",
	}

	err := Validate(data, Rules{"user.email": "email", "a.b": "required|alpha"})
	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"user.email"}, verrs.Paths())
}

func TestValidate_MalformedRules(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		want  error
	}{
		{name: "unknown rule", rules: Rules{"f": "required|shiny"}, want: ErrUnknownRule},
		{name: "min without param", rules: Rules{"f": "min"}, want: ErrInvalidRule},
		{name: "min with text", rules: Rules{"f": "min:abc"}, want: ErrInvalidRule},
		{name: "between one param", rules: Rules{"f": "between:1"}, want: ErrInvalidRule},
		{name: "between with text", rules: Rules{"f": "between:a,b"}, want: ErrInvalidRule},
		{name: "between upper bound text", rules: Rules{"f": "between:1,b"}, want: ErrInvalidRule},
		{name: "in without values", rules: Rules{"f": "in"}, want: ErrInvalidRule},
		{name: "rules not a string", rules: Rules{"f": 42}, want: ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(map[string]any{"f": "x"}, tt.rules)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_AttributeNames(t *testing.T) {
	rules := Rules{"first_name": "required"}

	err := Validate(map[string]any{}, rules)
	assert.Equal(t, "The first name field is required.", firstMessage(t, err))

	err = Validate(map[string]any{}, rules, WithAttributes(map[string]string{"first_name": "Given name"}))
	assert.Equal(t, "The Given name field is required.", firstMessage(t, err))

	err = Validate(map[string]any{}, rules,
		WithLang(LangTR),
		WithAttributes(map[string]string{"first_name": "Given name"}),
		WithLangAttributes(map[string]map[string]string{LangTR: {"first_name": "Ad"}}),
	)
	assert.Equal(t, "Ad alanı gerekli.", firstMessage(t, err))
}

func TestValidate_Languages(t *testing.T) {
	rules := Rules{"age": "between:18,130"}
	data := map[string]any{"age": float64(5)}

	assert.Equal(t, "The age field must be between 18 and 130.", firstMessage(t, Validate(data, rules)))
	assert.Equal(t, "age 18 ile 130 arasında olmalıdır.", firstMessage(t, Validate(data, rules, WithLang(LangTR))))
	assert.Equal(t, "The age field must be between 18 and 130.", firstMessage(t, Validate(data, rules, WithLang("xx"))))
}

func TestLocalize_Relocalizes(t *testing.T) {
	err := Validate(map[string]any{"name": "ab"}, Rules{"name": "min:3"})
	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "The name must be at least 3 characters.", verrs.Fields[0].Message)

	Localize(verrs, LangTR, map[string]string{"name": "İsim"})
	assert.Equal(t, "İsim en az 3 karakter olmalıdır.", verrs.Fields[0].Message)

	assert.NotPanics(t, func() { Localize(nil, LangEN, nil) })
}

func TestErrors_Error(t *testing.T) {
	errs := &Errors{Fields: []FieldError{
		{Path: "a", Message: "A is bad."},
		{Path: "b", Message: "B is bad."},
	}}
	assert.Equal(t, "validation failed: a: A is bad.; b: B is bad.", errs.Error())
}

func firstMessage(t *testing.T, err error) string {
	t.Helper()

	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs.Fields)
	return verrs.Fields[0].Message
}

func TestValidate_NumericStringSizeMessages(t *testing.T) {
	err := Validate(map[string]any{"age": "2"}, Rules{"age": "numeric|min:3"})

	var verrs *Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string][]string{"age": {"The age must be at least 3."}}, verrs.ByField())
}
