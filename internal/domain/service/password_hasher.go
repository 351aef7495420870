// Package service declares the technical capabilities the usecases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes and checks operator passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
