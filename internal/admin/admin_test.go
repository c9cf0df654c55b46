package admin

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/service"
	"moosage/internal/infra/auth"
	"moosage/internal/infra/persistence/jsonstore"
	"moosage/internal/infra/session"
	"moosage/internal/usecase/impl"
	"moosage/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := jsonstore.NewUserStore(bucket, "users.json", logger)
	activity := jsonstore.NewActivityStore(bucket, "activity.json", 100, logger)

	return &App{
		Auth: impl.NewAuthService(impl.AuthServiceParams{
			UserRepo:  users,
			Sessions:  session.NewRegistry(),
			Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
			Validator: validation.New(),
			Logger:    logger,
		}),
		Users:    users,
		Moosages: jsonstore.NewMoosageStore(bucket, "moosages.json", users, service.NewRealClock(), logger),
		Activity: impl.NewActivityService(impl.ActivityServiceParams{ActivityRepo: activity, Logger: logger}),
	}
}

func run(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestUserAdd_PasswordStdin(t *testing.T) {
	app := newTestApp(t)

	out, err := run(t, app, "Passw0rd\n", "user", "add", "carol", "carol@x.com", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "created user carol")

	_, err = app.Auth.Login(context.Background(), "carol", "Passw0rd")
	assert.NoError(t, err)
}

func TestUserAdd_AppliesSignupRules(t *testing.T) {
	app := newTestApp(t)

	_, err := run(t, app, "short\n", "user", "add", "carol", "carol@x.com", "--password-stdin")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestUserAdd_RefusesWhileAPIRuns(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	app := newTestApp(t)
	app.APILive = HealthProbe(api.URL+"/health", time.Second)

	_, err := run(t, app, "Passw0rd\n", "user", "add", "carol", "carol@x.com", "--password-stdin")
	assert.ErrorIs(t, err, ErrAPIRunning)

	exists, err := app.Users.UsernameExists(context.Background(), "carol")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserAdd_WritesWhenAPIDown(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	downURL := api.URL + "/health"
	api.Close()

	app := newTestApp(t)
	app.APILive = HealthProbe(downURL, time.Second)

	out, err := run(t, app, "Passw0rd\n", "user", "add", "carol", "carol@x.com", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, "created user carol")
}

func TestUserAdd_PromptsTwice(t *testing.T) {
	app := newTestApp(t)
	answers := []string{"Passw0rd", "Passw0rd"}
	app.ReadPassword = func() ([]byte, error) {
		next := answers[0]
		answers = answers[1:]

		return []byte(next), nil
	}

	_, err := run(t, app, "", "user", "add", "carol", "carol@x.com")
	require.NoError(t, err)

	app.ReadPassword = func() func() ([]byte, error) {
		calls := 0

		return func() ([]byte, error) {
			calls++
			if calls == 1 {
				return []byte("Passw0rd"), nil
			}

			return []byte("Different1"), nil
		}
	}()

	_, err = run(t, app, "", "user", "add", "dave", "dave@x.com")
	assert.EqualError(t, err, "passwords do not match")
}

func TestUserShowAndList(t *testing.T) {
	app := newTestApp(t)
	_, err := run(t, app, "Passw0rd\n", "user", "add", "carol", "carol@x.com", "--password-stdin")
	require.NoError(t, err)

	out, err := run(t, app, "", "user", "show", "carol@x.com")
	require.NoError(t, err)
	assert.Contains(t, out, "username  carol")
	assert.NotContains(t, out, "$2a$")

	out, err = run(t, app, "", "user", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "carol@x.com")

	_, err = run(t, app, "", "user", "show", "nobody")
	assert.EqualError(t, err, `no user matches "nobody"`)
}

func TestPostList(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	_, err := run(t, app, "Passw0rd\n", "user", "add", "carol", "carol@x.com", "--password-stdin")
	require.NoError(t, err)
	carol, err := app.Users.FindByUsernameOrEmail(ctx, "carol")
	require.NoError(t, err)

	_, err = app.Moosages.Create(ctx, "hello\nworld", carol.ID)
	require.NoError(t, err)

	out, err := run(t, app, "", "post", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "carol")
}

func TestActivityTail(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, eventType := range []service.MoosageEventType{service.MoosageCreated, service.MoosageLiked, service.MoosageDeleted} {
		require.NoError(t, app.Activity.Record(ctx, &service.MoosageEvent{
			EventID:    string(eventType),
			Type:       eventType,
			MoosageID:  1,
			ActorID:    "carol",
			AuthorID:   "carol",
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	out, err := run(t, app, "", "activity", "tail", "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "moosage.deleted")
	assert.Contains(t, lines[2], "moosage.liked")
}
