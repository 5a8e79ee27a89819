// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/result"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

const defaultBcryptCost = 12

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The work factor is deliberately expensive; each call runs on the request's
// own goroutine so concurrent requests are not blocked by one another.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the cost factor from config.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor,
// bypassing config. Intended for tests that need a cheap work factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a bcrypt hash from the plaintext.
func (h *bcryptHasher) Hash(plaintext string) result.Result[string] {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return result.Fail[string](errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error()))
	}

	return result.Ok(string(bytes))
}

// Compare checks the plaintext against a bcrypt hash. A mismatch is Ok(false);
// a malformed hash or any other library error is a failure.
func (h *bcryptHasher) Compare(plaintext, hash string) result.Result[bool] {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return result.Ok(true)
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return result.Ok(false)
	}

	return result.Fail[bool](errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error()))
}
