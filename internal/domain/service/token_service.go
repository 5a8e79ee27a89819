package service

import (
	"time"

	"passport/internal/domain/entity"
	"passport/internal/domain/result"
)

// TokenService issues and verifies signed, expiring tokens carrying a subject
// id and a type tag. Issuance and verification are pure and fast; nothing here
// touches storage.
type TokenService interface {
	// Issue signs the payload with the configured TTL for its token type.
	Issue(payload entity.TokenPayload) (string, error)

	// Verify checks signature and expiry. The three outcomes are
	// distinguishable: Ok(payload), errors.ErrExpiredToken, or
	// errors.ErrInvalidToken for anything structurally wrong or tampered.
	Verify(token string) result.Result[entity.TokenPayload]

	// AccessTokenTTL returns the configured lifetime for access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured lifetime for refresh tokens.
	RefreshTokenTTL() time.Duration
}
