package fingerprint

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
)

// Size is the number of digest bytes kept.
const Size = 10

// Bytes returns a short hex fingerprint of b.
func Bytes(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:Size])
}

// JSON fingerprints the JSON encoding of v.
func JSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Bytes(b), nil
}
