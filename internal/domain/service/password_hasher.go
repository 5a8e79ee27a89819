// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"passport/internal/domain/entity"
	"passport/internal/domain/result"
)

// PasswordHasher is the raw one-way hashing primitive. It is stateless and
// swappable (e.g. bcrypt for argon2) because salting lives one layer up in
// PasswordService.
type PasswordHasher interface {
	// Hash derives an opaque hash from the plaintext. Library errors come
	// back as a failed Result, never as a panic.
	Hash(plaintext string) result.Result[string]

	// Compare checks the plaintext against a previously produced hash.
	// A simple mismatch is Ok(false); only infrastructure errors fail.
	Compare(plaintext, hash string) result.Result[bool]
}

// PasswordService combines salt generation with the hasher to produce and
// verify credential records. The salt is stored alongside the hash in the
// user record.
type PasswordService interface {
	// HashPassword generates a fresh random salt, mixes it into the
	// plaintext and hashes the combination.
	HashPassword(plaintext string) result.Result[entity.Credentials]

	// VerifyPassword reconstructs the salted input with the stored salt and
	// compares it against the stored hash. Ok(false) means the password
	// simply does not match.
	VerifyPassword(plaintext, salt, hash string) result.Result[bool]
}
