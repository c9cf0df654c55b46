// Package handler contains the HTTP handlers for the moosage API.
package handler

import (
	"log/slog"
	"net/http"

	"moosage/internal/delivery/api/middleware"
	"moosage/internal/delivery/api/response"
	"moosage/internal/domain/entity"
	"moosage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup, login and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account. The password hash is never serialised.
type UserResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	SessionToken string `json:"sessionToken"`
	UserResponse
}

// VerifyResponse reports whether the presented session token is active.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}

	user, err := h.authUC.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login handles POST /auth/login and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.StartSession(c.Request().Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		SessionToken: output.SessionToken,
		UserResponse: newUserResponse(output.User),
	})
}

// Logout handles POST /auth/logout. Unknown or missing tokens still succeed.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authUC.Logout(c.Request().Context(), middleware.SessionToken(c))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Verify handles GET /auth/verify.
func (h *AuthHandler) Verify(c echo.Context) error {
	valid := h.authUC.Verify(c.Request().Context(), middleware.SessionToken(c))

	return response.Success(c, http.StatusOK, VerifyResponse{Valid: valid})
}
