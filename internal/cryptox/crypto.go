package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// tokenAlphabet has exactly 64 symbols so that a random byte masked to six
// bits maps onto it without bias.
const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// HashPassword returns a salted bcrypt hash of password.
//
// Inputs longer than 72 bytes are rejected with ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash. A malformed hash
// never matches.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RandomToken returns n characters drawn uniformly from a URL-safe alphabet
// using crypto/rand.
func RandomToken(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid token length %d", n)
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("random token: %w", err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[b&63]
	}
	return string(buf), nil
}

// Wipe overwrites b with zeros. Use it on password buffers once they are
// no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
