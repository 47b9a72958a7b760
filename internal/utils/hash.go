package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes HMAC-SHA256 over secret keyed by salt and returns it
// hex-encoded.
//
// The result is deterministic for a given (secret, salt) pair, which makes
// it suitable for password-equivalent comparison: store Hash(password, salt)
// and compare against Hash(candidate, salt) later. It is not encryption.
//
// Example usage:
//
//	salt, _ := utils.RandomID(16)
//	stored := utils.Hash("p4ssw0rd", salt)
func Hash(secret, salt string) string {
	return hex.EncodeToString(hashString([]byte(secret), salt))
}

// hashString computes the raw HMAC-SHA256 digest of data keyed by key.
// A new HMAC instance is created on each call.
func hashString(data []byte, key string) []byte {
	hasher := hmac.New(sha256.New, []byte(key))
	hasher.Write(data)
	return hasher.Sum(nil)
}
