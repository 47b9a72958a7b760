package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte("salt"))
	h.Write([]byte("password"))
	expected := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, expected, Hash("password", "salt"))
}

func TestHash_Deterministic(t *testing.T) {
	assert.Equal(t, Hash("password", "salt"), Hash("password", "salt"))
	assert.Len(t, Hash("password", "salt"), 64)
}

func TestHash_DependsOnSecretAndSalt(t *testing.T) {
	base := Hash("password", "salt")

	assert.NotEqual(t, base, Hash("password", "pepper"))
	assert.NotEqual(t, base, Hash("Password", "salt"))
}

func TestHash_KnownVector(t *testing.T) {
	// RFC 4231 test case 2: key "Jefe", data "what do ya want for nothing?"
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		Hash("what do ya want for nothing?", "Jefe"))
}
