// Package password wraps the one-way password hashing primitive.
package password

import "golang.org/x/crypto/bcrypt"

// cost is the fixed bcrypt work factor.
const cost = 10

// Hash returns the salted one-way hash of plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches hash.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
