package state

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// DefaultByteLength is the entropy used by Generate, yielding a 64-character
// hex token.
const DefaultByteLength = 32

// Sentinel errors for state validation.
var (
	// ErrMissing is returned when either side of a comparison is absent.
	ErrMissing = errors.New("state: missing state token")

	// ErrMismatch is returned when the tokens differ in length or content.
	ErrMismatch = errors.New("state: state token mismatch")
)

// Generate returns a hex-encoded token with DefaultByteLength bytes of
// cryptographically secure randomness.
func Generate() (string, error) {
	return GenerateN(DefaultByteLength)
}

// GenerateN returns a hex-encoded token built from n random bytes, so the
// result is 2n characters long. Non-positive n falls back to
// DefaultByteLength.
func GenerateN(n int) (string, error) {
	if n <= 0 {
		n = DefaultByteLength
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Validate compares an issued token against the one received on the
// callback. The content comparison is constant time: its duration does not
// depend on the position of the first differing byte, so an attacker cannot
// recover the token byte by byte from response timing.
func Validate(expected, received string) error {
	if expected == "" || received == "" {
		return ErrMissing
	}
	if len(expected) != len(received) {
		return ErrMismatch
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(received)) != 1 {
		return ErrMismatch
	}
	return nil
}
