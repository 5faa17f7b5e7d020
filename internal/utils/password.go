package utils

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords bcrypt would reject.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword returns a bcrypt hash of plain using the given cost. The salt
// is generated per call and embedded in the returned string.
func HashPassword(plain string, cost int) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares bcrypt hash and plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var dummyHashes sync.Map // cost -> hash

// BurnVerify runs a bcrypt comparison against a throwaway hash of the given
// cost. Login calls it for unknown emails so both failure paths take about
// as long as a real comparison.
func BurnVerify(plain string, cost int) {
	h, ok := dummyHashes.Load(cost)
	if !ok {
		generated, err := bcrypt.GenerateFromPassword([]byte("burn-verify-placeholder"), cost)
		if err != nil {
			return
		}
		h, _ = dummyHashes.LoadOrStore(cost, string(generated))
	}
	_ = VerifyPassword(h.(string), plain)
}
