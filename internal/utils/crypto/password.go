package crypto

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost currently using the default cost of bcrypt
var HashCost = bcrypt.DefaultCost

// HashPassword derives a one-way bcrypt digest of the given password.
// The plaintext is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a plaintext password against a stored bcrypt hash.
// It returns (false, nil) on mismatch and a non-nil error only when the
// stored hash is malformed or the comparison itself fails.
func ComparePassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
