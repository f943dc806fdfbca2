// Package service defines interfaces for domain collaborators that live outside the entities:
// payment processing, event publishing, QR codes and credentials.
package service

// PasswordHasher defines the interface for secret hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a hash.
	Check(secret, hash string) bool
}
