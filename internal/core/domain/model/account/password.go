package account

import (
	"gelsin/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordMinLen = 6
	passwordMaxLen = 72 // bcrypt input limit
)

// HashPassword validates a plaintext password against length bounds and
// returns its bcrypt hash.
func HashPassword(password string) (string, error) {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return "", errs.NewValueIsOutOfRangeError("password", len(password), passwordMinLen, passwordMaxLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether a plaintext password matches a stored hash.
func CheckPassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
