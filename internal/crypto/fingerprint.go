package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"enigma/internal/domain"
)

// Fingerprint returns a short hex fingerprint of machine settings.
//
// It hashes the canonical settings string with SHA-256 and truncates to 10
// bytes (20 hex chars).
func Fingerprint(s domain.Settings) domain.Fingerprint {
	sum := sha256.Sum256([]byte(s.String()))
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
