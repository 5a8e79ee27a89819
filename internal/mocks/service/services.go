// Package service provides hand-written testify mocks for the domain service
// contracts.
package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"passport/internal/domain/entity"
	"passport/internal/domain/result"
)

// PasswordService is a mock implementation of service.PasswordService.
type PasswordService struct {
	mock.Mock
}

func (m *PasswordService) HashPassword(plaintext string) result.Result[entity.Credentials] {
	args := m.Called(plaintext)

	return args.Get(0).(result.Result[entity.Credentials])
}

func (m *PasswordService) VerifyPassword(plaintext, salt, hash string) result.Result[bool] {
	args := m.Called(plaintext, salt, hash)

	return args.Get(0).(result.Result[bool])
}

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plaintext string) result.Result[string] {
	args := m.Called(plaintext)

	return args.Get(0).(result.Result[string])
}

func (m *PasswordHasher) Compare(plaintext, hash string) result.Result[bool] {
	args := m.Called(plaintext, hash)

	return args.Get(0).(result.Result[bool])
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Issue(payload entity.TokenPayload) (string, error) {
	args := m.Called(payload)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Verify(token string) result.Result[entity.TokenPayload] {
	args := m.Called(token)

	return args.Get(0).(result.Result[entity.TokenPayload])
}

func (m *TokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

func (m *TokenService) RefreshTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
