package cryptox

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device not configured") }

// biasedReader returns bytes that are always rejected, then ones that are not.
type biasedReader struct{ calls int }

func (r *biasedReader) Read(p []byte) (int, error) {
	r.calls++
	for i := range p {
		if r.calls == 1 {
			p[i] = 0xFF
		} else {
			p[i] = byte(i % 62)
		}
	}
	return len(p), nil
}

func TestGenerateAlphanumeric(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"default length", DefaultTokenLength},
		{"single char", 1},
		{"short", 8},
		{"long", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAlphanumeric(tt.length)
			require.NoError(t, err)
			require.Len(t, token, tt.length)
			require.True(t, IsAlphanumeric(token), "token %q has characters outside the alphabet", token)
		})
	}
}

func TestGenerateAlphanumeric_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"zero length", 0},
		{"negative length", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateAlphanumeric(tt.length)
			require.Error(t, err)
			require.Empty(t, token)
		})
	}
}

func TestGenerateAlphanumeric_EntropySourceFailure(t *testing.T) {
	orig := Reader
	Reader = failingReader{}
	t.Cleanup(func() { Reader = orig })

	token, err := GenerateAlphanumeric(DefaultTokenLength)
	require.ErrorIs(t, err, ErrEntropySource)
	require.Contains(t, err.Error(), "device not configured")
	require.Empty(t, token)
}

func TestGenerateAlphanumeric_RejectsBiasedBytes(t *testing.T) {
	orig := Reader
	r := &biasedReader{}
	Reader = r
	t.Cleanup(func() { Reader = orig })

	token, err := GenerateAlphanumeric(10)
	require.NoError(t, err)
	require.Equal(t, Alphabet[:10], token)
	require.Equal(t, 2, r.calls, "first batch of 0xFF bytes should have been discarded")
}

func TestGenerateAlphanumeric_Uniqueness(t *testing.T) {
	// Generate a large sample and ensure there are no collisions
	const count = 10_000
	tokens := make(map[string]struct{}, count)

	for range count {
		token, err := GenerateAlphanumeric(DefaultTokenLength)
		require.NoError(t, err)
		_, dup := tokens[token]
		require.False(t, dup, "duplicate token generated")
		tokens[token] = struct{}{}
	}
}

func TestGenerateAlphanumeric_CoversAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for range 200 {
		token, err := GenerateAlphanumeric(DefaultTokenLength)
		require.NoError(t, err)
		for _, c := range token {
			seen[c] = true
		}
	}

	// 6400 draws over 62 symbols, every one should show up
	for _, c := range Alphabet {
		require.True(t, seen[c], "character %q never generated", c)
	}
}

func TestIsAlphanumeric(t *testing.T) {
	require.True(t, IsAlphanumeric("abcXYZ019"))
	require.False(t, IsAlphanumeric(""))
	require.False(t, IsAlphanumeric("abc-def"))
	require.False(t, IsAlphanumeric("ñandú"))
	require.False(t, IsAlphanumeric(strings.Repeat("a", 5)+" "))
}

func TestFingerprintToken(t *testing.T) {
	token1 := "test-token-1"
	token2 := "test-token-2"

	fp1a := FingerprintToken(token1)
	fp1b := FingerprintToken(token1)
	fp2 := FingerprintToken(token2)

	// Fingerprint should be deterministic
	require.Equal(t, fp1a, fp1b, "fingerprint should be deterministic")

	// Different tokens should have different fingerprints
	require.NotEqual(t, fp1a, fp2, "different tokens should have different fingerprints")

	// Fingerprint should be base64url encoded SHA-256 (43 chars)
	require.Len(t, fp1a, 43, "SHA-256 base64url should be 43 chars")
}
