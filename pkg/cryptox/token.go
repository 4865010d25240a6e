package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// DefaultTokenLength is the length of QR tokens issued by default.
const DefaultTokenLength = 32

// Alphabet is the character set tokens are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// acceptBelow is the largest multiple of len(Alphabet) that fits in a byte.
// Bytes at or above it are discarded so every character is equally likely.
const acceptBelow = 256 - (256 % len(Alphabet))

// ErrEntropySource is returned when the secure random source cannot be read.
// There is no fallback to a weaker generator.
var ErrEntropySource = errors.New("cryptox: secure random source unavailable")

// Reader is the entropy source used for token generation. Tests may swap it
// out to simulate a broken source.
var Reader io.Reader = rand.Reader

// GenerateAlphanumeric creates a cryptographically secure random token of
// exactly length characters drawn uniformly from Alphabet.
// Returns an error wrapping ErrEntropySource if the random source fails.
func GenerateAlphanumeric(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", length)
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4)

	for len(out) < length {
		if _, err := io.ReadFull(Reader, buf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEntropySource, err)
		}

		for _, b := range buf {
			if int(b) >= acceptBelow {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

// IsAlphanumeric reports whether s is non-empty and made only of Alphabet
// characters.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token.
// The server logs fingerprints so raw tokens never end up in log output.
//
// The fingerprint is returned as a base64url-encoded string (43 chars).
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
