// Package validation checks loosely typed request data (decoded JSON or
// form values) against declarative rule sets such as
//
//	validation.Rules{
//	    "email":    "required|email",
//	    "name":     "required|min:3|max:64",
//	    "age":      []string{"integer", "between:18,130"},
//	    "password": "required|min:8|confirmed",
//	}
//
// Rules are evaluated by go-playground/validator. Every violation becomes
// a [FieldError] record carrying the field path, the rule that failed and
// a human-readable message. Messages come from a per-language table and
// are attached in a separate step ([Localize]) so the same failures can be
// rendered in another language or with other attribute names.
package validation
