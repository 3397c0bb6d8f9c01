package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashContactKey returns a stable identifier for a contact detail such as
// an email address, so logs can correlate submissions without carrying PII.
func HashContactKey(s string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(s))))
	return hex.EncodeToString(sum[:])
}
