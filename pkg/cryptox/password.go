// Package cryptox provides password hashing for the client portal. Hashes are
// standard bcrypt strings so the user table stays compatible with rows written
// by earlier deployments of the site.
package cryptox

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor for new hashes. Verification reads the cost
// embedded in the stored hash, so bumping this only affects new passwords.
const Cost = 12

// HashPassword hashes a plaintext password with a random salt. Two calls with
// the same input produce different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Any failure from the primitive, including a malformed hash, is a plain
// mismatch; callers never see an error here.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
