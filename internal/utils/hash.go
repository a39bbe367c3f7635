package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for new hashes. Existing hashes carry
// their own cost and verify regardless.
const bcryptCost = bcrypt.DefaultCost

// HashPassword generates a salted bcrypt hash. The salt and cost are
// embedded in the output, so the result is a single opaque string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a stored hash.
// Returns false on mismatch and on malformed hashes; it never errors,
// so a corrupt hash behaves exactly like a wrong password.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
