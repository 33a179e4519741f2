package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// creates a salted bcrypt hash of the plaintext password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// checks a plaintext password against a stored bcrypt hash.
// Returns false for malformed hashes instead of erroring, so a
// corrupted or placeholder credential can never authenticate.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
