package user

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pauloryan091/agmais/internal/httperr"
)

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = httperr.ErrValidation(
	"password_too_long",
	"A senha deve ter no máximo 72 bytes",
)

func HashPassword(plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsHashed reports whether stored looks like a bcrypt hash.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// CheckPassword compares plain with the stored value. Rows written before
// hashing was introduced hold plaintext; those match verbatim and report
// legacy so the caller can rehash them.
func CheckPassword(stored, plain string) (ok bool, legacy bool) {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil, false
	}
	return stored != "" && stored == plain, true
}
