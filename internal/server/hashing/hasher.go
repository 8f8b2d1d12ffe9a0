// Package hashing abstracts one-way password hashing so the identity service
// does not depend on a concrete algorithm.
package hashing

// PasswordHasher hashes plaintext passwords and verifies candidates against
// previously produced hashes. Implementations must embed their own salt and
// use a constant-time comparison.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
