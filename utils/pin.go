// File: utils/pin.go
package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Storage format: scrypt$N$r$p$saltBase64$hashBase64
// Parameters chosen for fast hashing suitable for short PINs but with
// reasonable cost.
const (
	pinScryptN  = 1 << 15
	pinScryptR  = 8
	pinScryptP  = 1
	pinKeyLen   = 32
	pinSaltLen  = 16
	pinHashName = "scrypt"
)

// HashPin derives a salted scrypt hash for a staff PIN and encodes it in the
// self-describing storage format above.
func HashPin(pin string) (string, error) {
	salt := make([]byte, pinSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate PIN salt: %w", err)
	}

	key, err := scrypt.Key([]byte(pin), salt, pinScryptN, pinScryptR, pinScryptP, pinKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}

	return fmt.Sprintf("%s$%d$%d$%d$%s$%s",
		pinHashName, pinScryptN, pinScryptR, pinScryptP,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// ComparePin checks a plain PIN against a stored hash in constant time.
// Any malformed or foreign-format hash compares false rather than erroring.
func ComparePin(plainPin, hashedPin string) bool {
	parts := strings.Split(hashedPin, "$")
	if len(parts) != 6 || parts[0] != pinHashName {
		return false
	}

	n, errN := strconv.Atoi(parts[1])
	r, errR := strconv.Atoi(parts[2])
	p, errP := strconv.Atoi(parts[3])
	if errN != nil || errR != nil || errP != nil {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	stored, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil || len(stored) == 0 {
		return false
	}

	derived, err := scrypt.Key([]byte(plainPin), salt, n, r, p, len(stored))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(stored, derived) == 1
}
