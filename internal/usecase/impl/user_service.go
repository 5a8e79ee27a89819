// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/result"
	"passport/internal/domain/service"
	"passport/internal/errors"
	"passport/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	passwords    service.PasswordService
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Passwords    service.PasswordService
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		passwords:    params.Passwords,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateInput maps struct tag violations onto the validation error with a
// field-level message, so the caller sees which field was rejected.
func (srv *userService) validateInput(input any) error {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.ErrValidationFailed.WrapMessagef("field %s failed on %s", first.Field(), first.Tag())
	}

	return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
}

// Register orchestrates the complete user registration process. The plaintext
// password is hashed before the transaction opens and never enters the entity.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) result.Result[*usecase.RegisterOutput] {
	if err := srv.validateInput(input); err != nil {
		srv.log(ctx).Warn("Registration input rejected", slog.Any("error", err))

		return result.Fail[*usecase.RegisterOutput](err)
	}

	// Hashing is CPU-bound; keep it outside the transaction so the
	// connection is not held across bcrypt work.
	credentials := srv.passwords.HashPassword(input.Password)
	if credentials.IsFailure() {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", credentials.Err()))

		return result.Fail[*usecase.RegisterOutput](credentials.Err())
	}

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			Document:     input.Document,
			PasswordHash: credentials.Value().Hash,
			Salt:         credentials.Value().Salt,
		}

		if err := userRepo.Save(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to save user")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("document", input.Document), slog.Any("error", err))

		return result.Fail[*usecase.RegisterOutput](err)
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", registered.ID))

	return result.Ok(&usecase.RegisterOutput{UserID: registered.ID})
}

// Login authenticates by document and password and issues a token pair.
// Unknown document and wrong password stay distinct here; the delivery layer
// collapses them into one response so callers cannot probe for accounts.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) result.Result[*usecase.LoginOutput] {
	if err := srv.validateInput(input); err != nil {
		srv.log(ctx).Warn("Login input rejected", slog.Any("error", err))

		return result.Fail[*usecase.LoginOutput](err)
	}

	user, err := srv.userRepo.FindByDocument(ctx, input.Document)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown document", slog.String("document", input.Document))

		return result.Fail[*usecase.LoginOutput](domainerrors.ErrUserNotFound.WrapMessage("no user for document"))
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up user at login", slog.Any("error", err))

		return result.Fail[*usecase.LoginOutput](errors.Wrap(err, "failed to find user by document"))
	}

	verified := srv.passwords.VerifyPassword(input.Password, user.Salt, user.PasswordHash)
	if verified.IsFailure() {
		srv.log(ctx).Error("Password verification errored", slog.Int64("userID", user.ID), slog.Any("error", verified.Err()))

		return result.Fail[*usecase.LoginOutput](verified.Err())
	}
	if !verified.Value() {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("userID", user.ID))

		return result.Fail[*usecase.LoginOutput](domainerrors.ErrInvalidPassword.WrapMessage("password mismatch"))
	}

	token, err := srv.tokenService.Issue(entity.TokenPayload{UserID: user.ID, Type: entity.TokenTypeAccess})
	if err != nil {
		return result.Fail[*usecase.LoginOutput](errors.Wrap(err, "failed to issue access token"))
	}

	refresh, err := srv.tokenService.Issue(entity.TokenPayload{UserID: user.ID, Type: entity.TokenTypeRefresh})
	if err != nil {
		return result.Fail[*usecase.LoginOutput](errors.Wrap(err, "failed to issue refresh token"))
	}

	// Best effort: a failed stamp must not fail an otherwise valid login.
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		srv.log(ctx).Warn("Failed to update last login", slog.Int64("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return result.Ok(&usecase.LoginOutput{Token: token, Refresh: refresh})
}

// Refresh exchanges a valid refresh token for a new access token.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) result.Result[*usecase.RefreshOutput] {
	if err := srv.validateInput(input); err != nil {
		return result.Fail[*usecase.RefreshOutput](err)
	}

	payload := srv.tokenService.Verify(input.Refresh)
	if payload.IsFailure() {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", payload.Err()))

		return result.Fail[*usecase.RefreshOutput](payload.Err())
	}

	if payload.Value().Type != entity.TokenTypeRefresh {
		srv.log(ctx).Warn("Access token presented at refresh", slog.Int64("userID", payload.Value().UserID))

		return result.Fail[*usecase.RefreshOutput](domainerrors.ErrInvalidToken.WrapMessage("token is not a refresh token"))
	}

	token, err := srv.tokenService.Issue(entity.TokenPayload{UserID: payload.Value().UserID, Type: entity.TokenTypeAccess})
	if err != nil {
		return result.Fail[*usecase.RefreshOutput](errors.Wrap(err, "failed to issue access token"))
	}

	return result.Ok(&usecase.RefreshOutput{Token: token})
}
