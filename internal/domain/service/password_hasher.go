// Package service defines the contracts for domain-level services that require
// infrastructure support, such as hashing and token signing.
package service

// PasswordHasher defines the contract for one-way hashing and verification of
// user secrets. Implementations must be self-salting: two calls with the same
// secret produce different digests that both verify.
type PasswordHasher interface {
	// Hash derives a digest from a plaintext secret. It fails only on
	// malformed input (an empty secret).
	Hash(password string) (string, error)

	// Check reports whether the secret matches the digest. It never errors for
	// a well-formed, mismatched pair and must not leak timing information
	// proportional to a partial match.
	Check(password, hash string) bool
}
