package usecase

import (
	"context"

	"moosage/internal/domain/entity"
)

// RegisterUserInput carries signup data. The validate tags are the only account field rules.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=20,nospace"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72,letterdigit"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	SessionToken string
	User         *entity.User
}

// AuthUsecase covers registration, credential checks and session handling.
type AuthUsecase interface {
	// RegisterUser validates the input, rejects taken usernames or emails, hashes the password and stores the user.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login checks credentials. Blank arguments fail with ErrInvalidInput; an unknown
	// user or wrong password fails with ErrInvalidCredentials.
	Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, error)

	// StartSession performs Login and issues a session token on success.
	StartSession(ctx context.Context, usernameOrEmail, password string) (*LoginOutput, error)

	// Logout terminates the session. Unknown tokens are ignored.
	Logout(ctx context.Context, token string)

	// Verify reports whether token belongs to an active session.
	Verify(ctx context.Context, token string) bool

	// Authenticate resolves token to a user ID, failing with ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (string, error)
}
