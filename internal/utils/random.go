package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomID returns a hex string of exactly length characters built from
// cryptographically random bytes.
//
// ceil(length/2) bytes are read so odd lengths are covered by slicing the
// encoded string. A non-positive length yields an empty string.
func RandomID(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf)[:length], nil
}
