package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/result"
	"passport/internal/errors"
	mockrepo "passport/internal/mocks/repository"
	mocksvc "passport/internal/mocks/service"
	"passport/internal/usecase"
)

type userServiceFixture struct {
	txManager *mockrepo.TransactionManager
	userRepo  *mockrepo.UserRepository
	passwords *mocksvc.PasswordService
	tokens    *mocksvc.TokenService
	svc       usecase.UserUsecase
}

func newUserServiceFixture() *userServiceFixture {
	userRepo := &mockrepo.UserRepository{}
	txManager := &mockrepo.TransactionManager{
		Factory: &mockrepo.RepositoryFactory{UserRepository: userRepo},
	}
	passwords := &mocksvc.PasswordService{}
	tokens := &mocksvc.TokenService{}

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Passwords:    passwords,
		TokenService: tokens,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &userServiceFixture{
		txManager: txManager,
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
		svc:       svc,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Document: "12345678901",
		Password: "correct horse",
	}
}

func TestRegister_Success(t *testing.T) {
	f := newUserServiceFixture()

	f.passwords.On("HashPassword", "correct horse").
		Return(result.Ok(entity.Credentials{Hash: "hashed", Salt: "salty"}))
	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("FindByEmail", mock.Anything, "ada@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.userRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Document == "12345678901" && u.PasswordHash == "hashed" && u.Salt == "salty"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 7
	}).Return(nil)

	res := f.svc.Register(context.Background(), validRegisterInput())

	require.True(t, res.IsSuccess())
	assert.Equal(t, int64(7), res.Value().UserID)
	f.userRepo.AssertExpectations(t)
}

func TestRegister_ValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{"empty name", func(in *usecase.RegisterInput) { in.Name = "" }},
		{"malformed email", func(in *usecase.RegisterInput) { in.Email = "not-an-email" }},
		{"short document", func(in *usecase.RegisterInput) { in.Document = "123" }},
		{"long document", func(in *usecase.RegisterInput) { in.Document = "123456789012" }},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "12345" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUserServiceFixture()
			input := validRegisterInput()
			tc.mutate(input)

			res := f.svc.Register(context.Background(), input)

			require.True(t, res.IsFailure())
			assert.True(t, errors.Is(res.Err(), domainerrors.ErrValidationFailed))
			// Nothing may be hashed or persisted for rejected input.
			f.passwords.AssertNotCalled(t, "HashPassword", mock.Anything)
			f.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_EmailAlreadyRegistered(t *testing.T) {
	f := newUserServiceFixture()

	f.passwords.On("HashPassword", mock.Anything).
		Return(result.Ok(entity.Credentials{Hash: "hashed", Salt: "salty"}))
	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("FindByEmail", mock.Anything, "ada@example.com").
		Return(&entity.User{ID: 3, Email: "ada@example.com"}, nil)

	res := f.svc.Register(context.Background(), validRegisterInput())

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrEmailAlreadyRegistered))
	f.userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateDocument(t *testing.T) {
	f := newUserServiceFixture()

	f.passwords.On("HashPassword", mock.Anything).
		Return(result.Ok(entity.Credentials{Hash: "hashed", Salt: "salty"}))
	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.userRepo.On("FindByEmail", mock.Anything, mock.Anything).
		Return(nil, repository.ErrUserNotFound)
	f.userRepo.On("Save", mock.Anything, mock.Anything).
		Return(domainerrors.ErrDocumentAlreadyRegistered.WrapMessage("duplicate document"))

	res := f.svc.Register(context.Background(), validRegisterInput())

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrDocumentAlreadyRegistered))
}

func TestRegister_HashFailure(t *testing.T) {
	f := newUserServiceFixture()

	f.passwords.On("HashPassword", mock.Anything).
		Return(result.Fail[entity.Credentials](domainerrors.ErrPasswordHashFailed.WrapMessage("engine down")))

	res := f.svc.Register(context.Background(), validRegisterInput())

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrPasswordHashFailed))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func storedUser() *entity.User {
	return &entity.User{
		ID:           42,
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Document:     "12345678901",
		PasswordHash: "hashed",
		Salt:         "salty",
	}
}

func TestLogin_Success(t *testing.T) {
	f := newUserServiceFixture()

	f.userRepo.On("FindByDocument", mock.Anything, "12345678901").Return(storedUser(), nil)
	f.passwords.On("VerifyPassword", "correct horse", "salty", "hashed").Return(result.Ok(true))
	f.tokens.On("Issue", entity.TokenPayload{UserID: 42, Type: entity.TokenTypeAccess}).
		Return("access-token", nil)
	f.tokens.On("Issue", entity.TokenPayload{UserID: 42, Type: entity.TokenTypeRefresh}).
		Return("refresh-token", nil)
	f.userRepo.On("UpdateLastLogin", mock.Anything, int64(42), mock.AnythingOfType("time.Time")).
		Return(nil)

	res := f.svc.Login(context.Background(), &usecase.LoginInput{Document: "12345678901", Password: "correct horse"})

	require.True(t, res.IsSuccess())
	assert.Equal(t, "access-token", res.Value().Token)
	assert.Equal(t, "refresh-token", res.Value().Refresh)
	f.userRepo.AssertExpectations(t)
	f.tokens.AssertExpectations(t)
}

func TestLogin_UnknownDocument(t *testing.T) {
	f := newUserServiceFixture()

	f.userRepo.On("FindByDocument", mock.Anything, "12345678901").
		Return(nil, repository.ErrUserNotFound)

	res := f.svc.Login(context.Background(), &usecase.LoginInput{Document: "12345678901", Password: "whatever"})

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrUserNotFound))
	assert.True(t, domainerrors.IsAuthenticationFailure(res.Err()))
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newUserServiceFixture()

	f.userRepo.On("FindByDocument", mock.Anything, "12345678901").Return(storedUser(), nil)
	f.passwords.On("VerifyPassword", "wrong", "salty", "hashed").Return(result.Ok(false))

	res := f.svc.Login(context.Background(), &usecase.LoginInput{Document: "12345678901", Password: "wrong"})

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrInvalidPassword))
	assert.True(t, domainerrors.IsAuthenticationFailure(res.Err()))
	f.tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestLogin_VerificationError(t *testing.T) {
	f := newUserServiceFixture()

	f.userRepo.On("FindByDocument", mock.Anything, mock.Anything).Return(storedUser(), nil)
	f.passwords.On("VerifyPassword", mock.Anything, mock.Anything, mock.Anything).
		Return(result.Fail[bool](errors.New("bcrypt engine failure")))

	res := f.svc.Login(context.Background(), &usecase.LoginInput{Document: "12345678901", Password: "correct horse"})

	require.True(t, res.IsFailure())
	assert.False(t, domainerrors.IsAuthenticationFailure(res.Err()))
}

func TestLogin_LastLoginStampFailureDoesNotFailLogin(t *testing.T) {
	f := newUserServiceFixture()

	f.userRepo.On("FindByDocument", mock.Anything, mock.Anything).Return(storedUser(), nil)
	f.passwords.On("VerifyPassword", mock.Anything, mock.Anything, mock.Anything).Return(result.Ok(true))
	f.tokens.On("Issue", mock.Anything).Return("token", nil)
	f.userRepo.On("UpdateLastLogin", mock.Anything, int64(42), mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))

	res := f.svc.Login(context.Background(), &usecase.LoginInput{Document: "12345678901", Password: "correct horse"})

	require.True(t, res.IsSuccess())
}

func TestRefresh_Success(t *testing.T) {
	f := newUserServiceFixture()

	f.tokens.On("Verify", "refresh-token").
		Return(result.Ok(entity.TokenPayload{UserID: 42, Type: entity.TokenTypeRefresh}))
	f.tokens.On("Issue", entity.TokenPayload{UserID: 42, Type: entity.TokenTypeAccess}).
		Return("fresh-access", nil)

	res := f.svc.Refresh(context.Background(), &usecase.RefreshInput{Refresh: "refresh-token"})

	require.True(t, res.IsSuccess())
	assert.Equal(t, "fresh-access", res.Value().Token)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	f := newUserServiceFixture()

	f.tokens.On("Verify", "access-token").
		Return(result.Ok(entity.TokenPayload{UserID: 42, Type: entity.TokenTypeAccess}))

	res := f.svc.Refresh(context.Background(), &usecase.RefreshInput{Refresh: "access-token"})

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrInvalidToken))
	f.tokens.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	f := newUserServiceFixture()

	f.tokens.On("Verify", "stale").
		Return(result.Fail[entity.TokenPayload](domainerrors.ErrExpiredToken.WrapMessage("token expired")))

	res := f.svc.Refresh(context.Background(), &usecase.RefreshInput{Refresh: "stale"})

	require.True(t, res.IsFailure())
	assert.True(t, errors.Is(res.Err(), domainerrors.ErrExpiredToken))
}

func TestLogin_UpdatesLastLoginWithCurrentTime(t *testing.T) {
	f := newUserServiceFixture()

	var stamped time.Time
	f.userRepo.On("FindByDocument", mock.Anything, mock.Anything).Return(storedUser(), nil)
	f.passwords.On("VerifyPassword", mock.Anything, mock.Anything, mock.Anything).Return(result.Ok(true))
	f.tokens.On("Issue", mock.Anything).Return("token", nil)
	f.userRepo.On("UpdateLastLogin", mock.Anything, int64(42), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			stamped = args.Get(2).(time.Time)
		}).Return(nil)

	before := time.Now()
	res := f.svc.Login(context.Background(), &usecase.LoginInput{Document: "12345678901", Password: "correct horse"})
	after := time.Now()

	require.True(t, res.IsSuccess())
	assert.False(t, stamped.Before(before))
	assert.False(t, stamped.After(after))
}
