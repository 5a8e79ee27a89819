// Package repository provides hand-written testify mocks for the repository
// contracts, used by the workflow tests.
package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByDocument(ctx context.Context, document string) (*entity.User, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *UserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	args := m.Called(ctx, userID, at)

	return args.Error(0)
}

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the given function against the provided factory so tests can
// observe the calls made inside the transaction.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// RepositoryFactory is a mock factory handing out the configured repositories.
type RepositoryFactory struct {
	UserRepository repository.UserRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}
