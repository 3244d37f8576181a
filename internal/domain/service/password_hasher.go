// Package service declares the ports the usecases call for work outside the
// database: hashing, tokens, media storage, cleanup events and rate limiting.
package service

// PasswordHasher turns account passwords into storable hashes.
type PasswordHasher interface {
	// Hash fails when the password cannot be hashed, e.g. bcrypt's 72 byte limit.
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
