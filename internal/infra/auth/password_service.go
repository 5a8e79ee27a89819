package auth

import (
	"encoding/hex"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
	"passport/internal/domain/result"
	"passport/internal/domain/service"
)

// saltedPasswordService implements service.PasswordService on top of a raw
// hasher. It owns salt generation so the hasher stays a stateless primitive.
type saltedPasswordService struct {
	hasher service.PasswordHasher
}

// NewPasswordService is the constructor for saltedPasswordService.
func NewPasswordService(hasher service.PasswordHasher) service.PasswordService {
	return &saltedPasswordService{hasher: hasher}
}

// HashPassword generates a fresh random salt, prepends it to the plaintext
// and delegates to the hasher. Hasher failures propagate as-is.
func (s *saltedPasswordService) HashPassword(plaintext string) result.Result[entity.Credentials] {
	salt := newSalt()

	hashed := s.hasher.Hash(salt + plaintext)
	if hashed.IsFailure() {
		return result.Fail[entity.Credentials](hashed.Err())
	}

	return result.Ok(entity.Credentials{
		Hash: hashed.Value(),
		Salt: salt,
	})
}

// VerifyPassword reconstructs salt||plaintext with the stored salt and
// delegates to Compare. The salt-then-password ordering must match
// HashPassword exactly.
func (s *saltedPasswordService) VerifyPassword(plaintext, salt, hash string) result.Result[bool] {
	return s.hasher.Compare(salt+plaintext, hash)
}

// newSalt returns 32 hex characters drawn from a cryptographically strong
// random source (a v4 UUID's 16 random bytes).
func newSalt() string {
	id := uuid.New()

	return hex.EncodeToString(id[:])
}
