// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/delivery/http/response"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler holds dependencies for the account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:     params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

// loginResponse is the body returned by a successful login. The session itself travels only in the cookie.
type loginResponse struct {
	User entity.Profile `json:"user"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account.Profile(), "User registered successfully")
}

// VerifyOTP handles the email confirmation request.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var input usecase.VerifyOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyOTP(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Otp verified successfully")
}

// ResendOTP replaces the outstanding code of an unverified account and mails it again.
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var input usecase.ResendOTPInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendOTP(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Otp sent successfully")
}

// Login handles the login request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(sessionCookie(h.cfg, output.Token, output.ExpiresIn))

	return response.Success(c, http.StatusOK, loginResponse{User: output.Profile}, "Login successful")
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(clearedCookie(h.cfg))

	return response.Success(c, http.StatusOK, nil, "logged out Successfully")
}

// Profile returns the authenticated account's public profile as a bare object.
func (h *AuthHandler) Profile(c echo.Context) error {
	account, ok := deliverycontext.AccountFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return c.JSON(http.StatusOK, account.Profile())
}

// Dashboard greets the authenticated account.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	account, ok := deliverycontext.AccountFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, nil, fmt.Sprintf("Welcome to dashboard, %s", account.Username))
}
