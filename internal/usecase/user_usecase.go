// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"passport/internal/domain/result"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Document is the national identity number, always 11 characters.
// The password upper bound keeps salt+password inside bcrypt's input limit.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Document string `json:"document" validate:"required,len=11"`
	Password string `json:"password" validate:"required,min=6,max=40"`
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Document string `json:"document" validate:"required,len=11"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries a refresh token to exchange for a new access token.
type RefreshInput struct {
	Refresh string `json:"refresh" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's identifier. No credential
// material is ever echoed back.
type RegisterOutput struct {
	UserID int64
}

// LoginOutput returns the signed token pair after a successful login.
type LoginOutput struct {
	Token   string
	Refresh string
}

// RefreshOutput returns the fresh access token from a refresh exchange.
type RefreshOutput struct {
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) result.Result[*RegisterOutput]
	Login(ctx context.Context, input *LoginInput) result.Result[*LoginOutput]
	Refresh(ctx context.Context, input *RefreshInput) result.Result[*RefreshOutput]
}
