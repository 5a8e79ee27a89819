// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/usecase"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	res := h.uc.Register(c.Request().Context(), &input)
	if res.IsFailure() {
		return errors.WithStack(res.Err())
	}

	// No credential material is ever echoed back.
	return response.Created(c)
}

// loginResponse is the token pair returned on successful login.
type loginResponse struct {
	Token   string `json:"token"`
	Refresh string `json:"refresh"`
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}

	res := h.uc.Login(c.Request().Context(), &input)
	if res.IsFailure() {
		return errors.WithStack(res.Err())
	}

	return response.JSON(c, http.StatusOK, loginResponse{
		Token:   res.Value().Token,
		Refresh: res.Value().Refresh,
	})
}

// refreshResponse carries the fresh access token from a refresh exchange.
type refreshResponse struct {
	Token string `json:"token"`
}

// Refresh exchanges a refresh token for a new access token.
func (h *UserHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid refresh input")
	}

	res := h.uc.Refresh(c.Request().Context(), &input)
	if res.IsFailure() {
		return errors.WithStack(res.Err())
	}

	return response.JSON(c, http.StatusOK, refreshResponse{Token: res.Value().Token})
}

// Me returns the authenticated user's id, proving the presented access token.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(int64)
	if !ok {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	return response.JSON(c, http.StatusOK, map[string]int64{"id": userID})
}
