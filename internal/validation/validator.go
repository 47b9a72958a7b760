package validation

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-r2base/internal/utils"
	"github.com/go-playground/validator/v10"
)

// Rules maps a field path to its rule expression: either the
// pipe-delimited form "required|min:3" or a []string of single rules.
type Rules map[string]any

// Validator evaluates [Rules]. A Validator is safe for concurrent use.
type Validator struct {
	engine *validator.Validate
}

type options struct {
	lang           string
	attributes     map[string]string
	langAttributes map[string]map[string]string
}

// Option configures a single Validate call.
type Option func(*options)

// WithLang selects the message language. Unknown languages fall back to
// English.
func WithLang(lang string) Option {
	return func(o *options) {
		o.lang = lang
	}
}

// WithAttributes overrides field display names for every language.
func WithAttributes(attrs map[string]string) Option {
	return func(o *options) {
		o.attributes = attrs
	}
}

// WithLangAttributes overrides field display names per language. An entry
// for the selected language wins over WithAttributes.
func WithLangAttributes(attrs map[string]map[string]string) Option {
	return func(o *options) {
		o.langAttributes = attrs
	}
}

var alphaDashRegex = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_-]+$`)

// New returns a Validator with the custom rules registered.
func New() *Validator {
	engine := validator.New()

	custom := map[string]validator.Func{
		"present":    func(fl validator.FieldLevel) bool { return isPresent(fl.Field()) },
		"integer":    func(fl validator.FieldLevel) bool { return isInteger(fl.Field()) },
		"string":     func(fl validator.FieldLevel) bool { return fl.Field().Kind() == reflect.String },
		"array":      func(fl validator.FieldLevel) bool { return isList(fl.Field()) },
		"alpha_dash": func(fl validator.FieldLevel) bool { return alphaDashRegex.MatchString(fl.Field().String()) },
	}
	for tag, fn := range custom {
		if err := engine.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %q: %v", tag, err))
		}
	}

	return &Validator{engine: engine}
}

var std = New()

// Validate checks data against rules with the package-level Validator.
func Validate(data map[string]any, rules Rules, opts ...Option) error {
	return std.Validate(data, rules, opts...)
}

// Validate checks data against rules. It returns nil when no rule is
// violated and *Errors otherwise. Malformed rule sets yield an error
// wrapping ErrUnknownRule or ErrInvalidRule.
func (v *Validator) Validate(data map[string]any, rules Rules, opts ...Option) error {
	o := options{lang: LangEN}
	for _, opt := range opts {
		opt(&o)
	}

	var fields []FieldError
	for _, path := range slices.Sorted(maps.Keys(rules)) {
		parsed, err := parseRules(rules[path])
		if err != nil {
			return fmt.Errorf("field %q: %w", path, err)
		}

		failed, err := v.validateField(data, path, parsed)
		if err != nil {
			return fmt.Errorf("field %q: %w", path, err)
		}
		fields = append(fields, failed...)
	}

	if len(fields) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(o.attributes))
	maps.Copy(attrs, o.attributes)
	maps.Copy(attrs, o.langAttributes[o.lang])

	errs := &Errors{Fields: fields}
	Localize(errs, o.lang, attrs)
	return errs
}

type rule struct {
	name   string
	params []string
}

func parseRules(expr any) ([]rule, error) {
	items := utils.Split(expr)
	if items == nil {
		return nil, fmt.Errorf("%w: rules must be a string or []string, got %T", ErrInvalidRule, expr)
	}

	out := make([]rule, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, param, _ := strings.Cut(item, ":")
		r := rule{name: name}
		if param != "" {
			r.params = strings.Split(param, ",")
		}
		out = append(out, r)
	}
	return out, nil
}

// tagFor translates a rule into a validator tag. Rules that need other
// fields of the document ("same", "confirmed") or loose comparison ("in")
// return an empty tag and are evaluated by validateField directly.
func tagFor(r rule) (string, error) {
	switch r.name {
	case "required":
		return "present", nil
	case "email", "url", "alpha", "numeric", "boolean", "integer", "string", "array", "alpha_dash":
		return r.name, nil
	case "alpha_num":
		return "alphanum", nil
	case "min", "max", "size":
		if len(r.params) != 1 {
			return "", fmt.Errorf("%w: %s needs one parameter", ErrInvalidRule, r.name)
		}
		if _, err := strconv.ParseFloat(r.params[0], 64); err != nil {
			return "", fmt.Errorf("%w: %s parameter %q is not a number", ErrInvalidRule, r.name, r.params[0])
		}
		tag := r.name
		if tag == "size" {
			tag = "len"
		}
		return tag + "=" + r.params[0], nil
	case "between":
		if len(r.params) != 2 {
			return "", fmt.Errorf("%w: between needs two parameters", ErrInvalidRule)
		}
		for _, p := range r.params {
			if _, err := strconv.ParseFloat(p, 64); err != nil {
				return "", fmt.Errorf("%w: between parameter %q is not a number", ErrInvalidRule, p)
			}
		}
		return "min=" + r.params[0] + ",max=" + r.params[1], nil
	case "in", "same":
		if len(r.params) == 0 {
			return "", fmt.Errorf("%w: %s needs a parameter", ErrInvalidRule, r.name)
		}
		return "", nil
	case "confirmed":
		return "", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRule, r.name)
	}
}

func (v *Validator) validateField(data map[string]any, path string, rules []rule) ([]FieldError, error) {
	value, _ := lookup(data, path)
	present := isPresent(reflect.ValueOf(value))

	// With a numeric rule, size rules compare a numeric string by value
	// instead of by length.
	sized := value
	if hasNumericRule(rules) {
		if s, ok := value.(string); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				sized = f
			}
		}
	}

	var failed []FieldError
	for _, r := range rules {
		tag, err := tagFor(r)
		if err != nil {
			return nil, err
		}

		// Only "required" looks at empty values; other rules pass on them.
		if !present {
			if r.name == "required" {
				failed = append(failed, FieldError{Path: path, Kind: r.name})
			}
			continue
		}

		var ok bool
		switch r.name {
		case "in":
			ok = slices.Contains(r.params, fmt.Sprint(value))
		case "same":
			other, _ := lookup(data, r.params[0])
			ok = reflect.DeepEqual(value, other)
		case "confirmed":
			other, _ := lookup(data, path+"_confirmation")
			ok = reflect.DeepEqual(value, other)
		case "min", "max", "size", "between":
			ok = v.check(sized, tag)
		default:
			ok = v.check(value, tag)
		}
		if ok {
			continue
		}

		fe := FieldError{Path: path, Kind: r.name, Params: r.params}
		switch r.name {
		case "min", "max", "size", "between":
			fe.variant = variantOf(sized)
		}
		failed = append(failed, fe)
	}
	return failed, nil
}

// check runs a single validator tag. The validator panics on value kinds
// a tag does not support (e.g. "min" on a bool); that counts as a failure.
func (v *Validator) check(value any, tag string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v.engine.Var(value, tag) == nil
}

// lookup resolves a dotted path in nested maps. A literal key containing
// dots takes precedence.
func lookup(data map[string]any, path string) (any, bool) {
	if v, ok := data[path]; ok {
		return v, true
	}

	head, rest, found := strings.Cut(path, ".")
	if !found {
		return nil, false
	}
	nested, ok := data[head].(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(nested, rest)
}

func isPresent(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) != ""
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil() && isPresent(v.Elem())
	default:
		return true
	}
}

func isInteger(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	case reflect.String:
		_, err := strconv.ParseInt(v.String(), 10, 64)
		return err == nil
	default:
		return false
	}
}

func hasNumericRule(rules []rule) bool {
	return slices.ContainsFunc(rules, func(r rule) bool {
		return r.name == "numeric" || r.name == "integer"
	})
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func variantOf(value any) string {
	v := reflect.ValueOf(value)
	switch {
	case isList(v):
		return "array"
	case v.Kind() == reflect.String:
		return "string"
	default:
		return "numeric"
	}
}
