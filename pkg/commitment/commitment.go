package commitment

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/showdown-games/showdown/pkg/game/types"
)

const (
	// Size is the length in bytes of a commitment digest.
	Size = sha256.Size
)

// Compute returns the hex-encoded commitment digest for a choice and
// a secret. A party computes this locally before creating or joining
// a game; the secret is only disclosed at reveal time.
func Compute(choice types.Choice, secret string) string {
	h := sha256.New()
	h.Write([]byte{byte(choice)})
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}

// Verify recomputes the digest for the claimed choice and secret and
// compares it to the stored digest. A mismatch is not an error here;
// the caller decides what a false result means.
func Verify(choice types.Choice, secret string, stored string) bool {
	storedBytes, err := hex.DecodeString(stored)
	if err != nil || len(storedBytes) != Size {
		return false
	}
	computed, err := hex.DecodeString(Compute(choice, secret))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(computed, storedBytes) == 1
}

// ValidDigest reports whether s is a well-formed hex digest of the
// expected length.
func ValidDigest(s string) bool {
	b, err := hex.DecodeString(s)
	return err == nil && len(b) == Size
}
