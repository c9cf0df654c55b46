package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"moosage/internal/domain/entity"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/repository"
	mockRepo "moosage/internal/mocks/repository"
	mockService "moosage/internal/mocks/service"
	"moosage/internal/usecase"
	"moosage/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	sessions *mockRepo.MockSessionRegistry
	hasher   *mockService.MockPasswordHasher
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessions := mockRepo.NewMockSessionRegistry(t)
	hasher := mockService.NewMockPasswordHasher(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:  userRepo,
		Sessions:  sessions,
		Hasher:    hasher,
		Validator: validation.New(),
		Logger:    discardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		sessions: sessions,
		hasher:   hasher,
	}
}

func validSignup() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Username: "carol",
		Email:    "carol@x.com",
		Password: "Passw0rd",
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validSignup()

	fx.userRepo.EXPECT().UsernameExists(ctx, "carol").Return(false, nil)
	fx.userRepo.EXPECT().EmailExists(ctx, "carol@x.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("Passw0rd").Return("hashed", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, "carol", "carol@x.com", "hashed").
		Return(&entity.User{ID: "u-1", Username: "carol", Email: "carol@x.com", PasswordHash: "hashed"}, nil)

	user, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "hashed", user.PasswordHash)
}

func TestAuthService_RegisterUser_ValidationRunsBeforeStorage(t *testing.T) {
	fx := createTestAuthService(t)

	inputs := []*usecase.RegisterUserInput{
		{Username: "taken name", Email: "carol@x.com", Password: "Passw0rd"},
		{Username: "carol", Email: "nope", Password: "Passw0rd"},
		{Username: "carol", Email: "carol@x.com", Password: "short1"},
		{Username: "carol", Email: "carol@x.com", Password: "noDigitsHere"},
		{Username: "carol", Email: "carol@x.com", Password: strings.Repeat("a", 79) + "1"},
		nil,
	}

	for _, input := range inputs {
		_, err := fx.service.RegisterUser(context.Background(), input)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	}

	fx.userRepo.AssertNotCalled(t, "UsernameExists", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

// An over-long password must fail the same way whether or not the username is taken.
func TestAuthService_RegisterUser_LongPasswordHidesExistingAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	password := strings.Repeat("a", 81) + "1"

	_, takenErr := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "carol", Email: "carol@x.com", Password: password})
	_, freeErr := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "dave", Email: "dave@x.com", Password: password})

	require.Error(t, takenErr)
	require.Error(t, freeErr)
	assert.Equal(t, "invalid input: password must be at most 72 bytes", takenErr.Error())
	assert.Equal(t, takenErr.Error(), freeErr.Error())
	fx.userRepo.AssertNotCalled(t, "UsernameExists", mock.Anything, mock.Anything)
}

func TestAuthService_RegisterUser_AlreadyExists(t *testing.T) {
	t.Run("username", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().UsernameExists(ctx, "carol").Return(true, nil)

		_, err := fx.service.RegisterUser(ctx, validSignup())
		require.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().UsernameExists(ctx, "carol").Return(false, nil)
		fx.userRepo.EXPECT().EmailExists(ctx, "carol@x.com").Return(true, nil)

		_, err := fx.service.RegisterUser(ctx, validSignup())
		require.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("lost race at insert", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().UsernameExists(ctx, "carol").Return(false, nil)
		fx.userRepo.EXPECT().EmailExists(ctx, "carol@x.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("Passw0rd").Return("hashed", nil)
		fx.userRepo.EXPECT().CreateUser(ctx, "carol", "carol@x.com", "hashed").Return(nil, repository.ErrUserExists)

		_, err := fx.service.RegisterUser(ctx, validSignup())
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})
}

func TestAuthService_RegisterUser_StorageFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	fx.userRepo.EXPECT().UsernameExists(ctx, "carol").Return(false, domainerrors.ErrStorageFailure.WrapMessage("read"))

	_, err := fx.service.RegisterUser(ctx, validSignup())
	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailure))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAuthService_Login(t *testing.T) {
	stored := &entity.User{ID: "u-1", Username: "carol", Email: "carol@x.com", PasswordHash: "hashed"}

	t.Run("success trims identifier", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "carol").Return(stored, nil)
		fx.hasher.EXPECT().Check("Passw0rd", "hashed").Return(true)

		user, err := fx.service.Login(ctx, "  carol ", "Passw0rd")
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "carol").Return(stored, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, "carol", "wrong")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, "ghost", "Passw0rd")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("blank arguments", func(t *testing.T) {
		fx := createTestAuthService(t)

		for _, args := range [][2]string{{"", "Passw0rd"}, {"   ", "Passw0rd"}, {"carol", ""}, {"carol", "  "}} {
			_, err := fx.service.Login(context.Background(), args[0], args[1])
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput), "args %q", args)
		}
	})
}

func TestAuthService_Sessions(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	stored := &entity.User{ID: "u-1", Username: "carol", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "carol").Return(stored, nil)
	fx.hasher.EXPECT().Check("Passw0rd", "hashed").Return(true)
	fx.sessions.EXPECT().Create("u-1").Return("tok-1")

	out, err := fx.service.StartSession(ctx, "carol", "Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", out.SessionToken)
	assert.Equal(t, stored, out.User)

	fx.sessions.EXPECT().IsValid("tok-1").Return(true)
	assert.True(t, fx.service.Verify(ctx, "tok-1"))

	fx.sessions.EXPECT().Resolve("tok-1").Return("u-1", true)
	userID, err := fx.service.Authenticate(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)

	fx.sessions.EXPECT().Resolve("gone").Return("", false)
	_, err = fx.service.Authenticate(ctx, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	fx.sessions.EXPECT().Terminate("tok-1").Return()
	fx.service.Logout(ctx, "tok-1")
}

func TestAuthService_StartSession_FailedLoginIssuesNoToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "carol").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.StartSession(ctx, "carol", "Passw0rd")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.sessions.AssertNotCalled(t, "Create", mock.Anything)
}
