// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "moosage/internal/delivery/context"
	"moosage/internal/domain/entity"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/repository"
	"moosage/internal/domain/service"
	"moosage/internal/usecase"
	"moosage/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo  repository.UserRepository
	sessions  repository.SessionRegistry
	hasher    service.PasswordHasher
	validator *validation.Validator
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Sessions  repository.SessionRegistry
	Hasher    service.PasswordHasher
	Validator *validation.Validator
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:  params.UserRepo,
		sessions:  params.Sessions,
		hasher:    params.Hasher,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser runs field validation before any storage access so malformed input
// never reveals whether an account exists.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.InvalidInput("registration data is required")
	}
	if err := srv.validator.Struct(input); err != nil {
		srv.log(ctx).Info("Registration rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	taken, err := srv.userRepo.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if taken {
		return nil, domainerrors.InvalidInput("username already exists")
	}

	taken, err = srv.userRepo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if taken {
		return nil, domainerrors.InvalidInput("email already exists")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user, err := srv.userRepo.CreateUser(ctx, input.Username, input.Email, hash)
	if errors.Is(err, repository.ErrUserExists) {
		return nil, domainerrors.InvalidInput("username or email already exists")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID), slog.String("username", user.Username))

	return user, nil
}

func (srv *authService) Login(ctx context.Context, usernameOrEmail, password string) (*entity.User, error) {
	key := strings.TrimSpace(usernameOrEmail)
	if key == "" {
		return nil, domainerrors.InvalidInput("username or email is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, domainerrors.InvalidInput("password is required")
	}

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, key)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed: unknown user")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed: password mismatch", slog.String("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("user_id", user.ID))

	return user, nil
}

func (srv *authService) StartSession(ctx context.Context, usernameOrEmail, password string) (*usecase.LoginOutput, error) {
	user, err := srv.Login(ctx, usernameOrEmail, password)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		SessionToken: srv.sessions.Create(user.ID),
		User:         user,
	}, nil
}

func (srv *authService) Logout(ctx context.Context, token string) {
	srv.sessions.Terminate(token)
	srv.log(ctx).Debug("Session terminated")
}

func (srv *authService) Verify(_ context.Context, token string) bool {
	return srv.sessions.IsValid(token)
}

func (srv *authService) Authenticate(_ context.Context, token string) (string, error) {
	userID, ok := srv.sessions.Resolve(token)
	if !ok {
		return "", domainerrors.ErrUnauthorized
	}

	return userID, nil
}
