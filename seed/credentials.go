package seed

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// CredentialAlgorithm tags the credential rows so the API knows how to
// verify them.
const CredentialAlgorithm = "scrypt-v1"

// scrypt-v1 parameters, matching the API's credential verification.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// DeterministicSalt derives a reproducible 16-byte salt from the seed and
// returns it base64-encoded. Using SHA-256 instead of the system entropy
// source keeps the same seed producing the same login credentials.
func DeterministicSalt(seed int64) string {
	digest := sha256.Sum256(fmt.Appendf(nil, "seed-scale:%d", seed))
	return base64.StdEncoding.EncodeToString(digest[:16])
}

// HashPassword computes the scrypt-v1 digest of password and returns it
// base64-encoded. The API stores the salt as a base64 string and feeds that
// string's UTF-8 bytes to scrypt without decoding it, so this does the same.
func HashPassword(password, saltBase64 string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(saltBase64), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to compute scrypt digest: %w", err)
	}

	return base64.StdEncoding.EncodeToString(key), nil
}
