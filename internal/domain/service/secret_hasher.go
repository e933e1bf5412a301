// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SecretHasher defines one-way hashing for every secret the system keeps:
// account passwords and one-time codes alike.
type SecretHasher interface {
	// Hash generates a salted hash of the plaintext using the configured cost.
	Hash(plaintext string) (string, error)

	// Compare reports whether the plaintext matches the hash.
	Compare(plaintext, hash string) bool
}
