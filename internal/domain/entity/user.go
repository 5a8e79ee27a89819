// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the persisted account record. The plaintext password never enters
// this struct: credentials are carried only as the bcrypt hash plus the
// per-user salt that was mixed into it.
type User struct {
	ID           int64      // Surrogate key assigned by the store.
	Name         string     // The user's display name.
	Email        string     // Contact email, unique across accounts.
	Document     string     // Fixed-length 11-character national identifier, unique across accounts.
	PasswordHash string     // Opaque bcrypt hash of salt||password.
	Salt         string     // Random per-user salt mixed into the hash.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	LastLogin    *time.Time // Timestamp of the most recent successful login, nil until the first one.
}

// Credentials is the transient output of hashing a password. It is consumed
// immediately to populate User.PasswordHash and User.Salt and is never
// persisted on its own.
type Credentials struct {
	Hash string
	Salt string
}
