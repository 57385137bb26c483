package noncestore

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"x402-gateway/internal/pkg/errs"
)

const (
	ModeRedis  = "redis"
	ModeMemory = "memory"

	tokenBytes = 32
)

// NewToken returns 256 bits of randomness, hex encoded.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes")
	}
	return hex.EncodeToString(b), nil
}

// Fingerprint is a short stable identifier safe to put in logs.
func Fingerprint(nonce string) string {
	sum := sha256.Sum256([]byte(nonce))
	return hex.EncodeToString(sum[:4])
}
