// Package proof computes and normalises the content hashes works are
// registered under.
package proof

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DigestPrefix is the optional algorithm prefix accepted on input hashes.
const DigestPrefix = "sha256:"

// ErrInvalidHash is returned for anything that is not a hex SHA-256 digest.
var ErrInvalidHash = errors.New("file hash must be 64 hex characters")

// HashContent returns the lower-case hex SHA-256 of everything read from r.
func HashContent(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes is HashContent for an in-memory file.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// NormalizeHash accepts a client-computed digest, optionally prefixed with
// "sha256:" and in any case, and returns it in the stored form.
func NormalizeHash(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, DigestPrefix)
	if len(s) != sha256.Size*2 {
		return "", fmt.Errorf("%w: got %d characters", ErrInvalidHash, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", ErrInvalidHash
	}
	return s, nil
}
