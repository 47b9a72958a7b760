package models

// Envelope is the JSON body written by every success builder:
//
//	{"name": "OK", "code": 200, "data": ...}
type Envelope struct {
	// Name identifies the outcome, e.g. "OK" or "Created".
	Name string `json:"name"`

	// Code mirrors the HTTP status code of the response.
	Code int `json:"code"`

	// Data is the success payload. A nil payload is rendered as null.
	Data any `json:"data"`
}

// ErrorEnvelope is the JSON body written by the terminal error stage:
//
//	{"name": "NotFound", "code": 404, "message": ...}
//
// Type is only present when the error carries a machine-readable tag.
type ErrorEnvelope struct {
	Name    string `json:"name"`
	Code    int    `json:"code"`
	Message any    `json:"message"`
	Type    string `json:"type,omitempty"`
}
