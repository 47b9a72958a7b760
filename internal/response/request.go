package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxBodyBytes caps the request bodies DecodeJSON reads.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the JSON request body into dst. It fails with
// UnsupportedMediaType for a non-JSON content type and with BadRequest for
// an empty, oversized or malformed body.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return UnsupportedMediaType(fmt.Sprintf("content type %q is not supported", ct))
		}
	}

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return BadRequest("request body is empty").WithCause(err)
		case errors.As(err, &maxErr):
			return BadRequest("request body is too large").WithCause(err)
		default:
			return BadRequest("request body is not valid JSON").WithCause(err)
		}
	}

	return nil
}
