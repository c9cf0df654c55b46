package jsonstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"moosage/config"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(newTestBucket(t), "users.json", discardLogger())

	user, err := store.CreateUser(ctx, "alice", "a@x.com", "hash-1")
	require.NoError(t, err)
	_, err = uuid.Parse(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash-1", user.PasswordHash)

	byName, err := store.FindByUsernameOrEmail(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, byName)

	byEmail, err := store.FindByUsernameOrEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserStore_Uniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(newTestBucket(t), "users.json", discardLogger())

	_, err := store.CreateUser(ctx, "alice", "a@x.com", "h")
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, "alice", "b@y.com", "h2")
	assert.ErrorIs(t, err, repository.ErrUserExists)

	_, err = store.CreateUser(ctx, "bob", "a@x.com", "h2")
	assert.ErrorIs(t, err, repository.ErrUserExists)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStore_LookupsAreExactAndCaseSensitive(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(newTestBucket(t), "users.json", discardLogger())
	_, err := store.CreateUser(ctx, "alice", "a@x.com", "h")
	require.NoError(t, err)

	for _, key := range []string{"", "Alice", "A@X.COM", "ali"} {
		_, err := store.FindByUsernameOrEmail(ctx, key)
		assert.ErrorIs(t, err, repository.ErrUserNotFound, "key %q", key)
	}

	_, err = store.FindByID(ctx, "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	exists, err := store.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = store.UsernameExists(ctx, "")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = store.EmailExists(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = store.EmailExists(ctx, "b@y.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserStore_InitializesAbsentAndEmptyDocuments(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "empty.json", []byte{}, nil))

	for _, key := range []string{"absent.json", "empty.json"} {
		store := NewUserStore(bucket, key, discardLogger())

		exists, err := store.UsernameExists(ctx, "alice")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.JSONEq(t, `{"users":[]}`, string(readRaw(t, bucket, key)))
	}
}

func TestUserStore_WireFormat(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	store := NewUserStore(bucket, "users.json", discardLogger())

	user, err := store.CreateUser(ctx, "carol", "carol@x.com", "$2a$12$hash")
	require.NoError(t, err)

	var raw map[string][]map[string]string
	require.NoError(t, json.Unmarshal(readRaw(t, bucket, "users.json"), &raw))
	require.Len(t, raw["users"], 1)
	assert.Equal(t, map[string]string{
		"username": "carol",
		"email":    "carol@x.com",
		"password": "$2a$12$hash",
		"userID":   user.ID,
	}, raw["users"][0])
}

func TestUserStore_ReadsExistingDocument(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	existing := `{"users":[{"username":"dave","email":"d@x.com","password":"h","userID":"u-42"}]}`
	require.NoError(t, bucket.WriteAll(ctx, "users.json", []byte(existing), nil))

	store := NewUserStore(bucket, "users.json", discardLogger())
	user, err := store.FindByID(ctx, "u-42")
	require.NoError(t, err)
	assert.Equal(t, "dave", user.Username)
}

func TestUserStore_CorruptDocumentIsStorageFailure(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "users.json", []byte("{not json"), nil))

	store := NewUserStore(bucket, "users.json", discardLogger())
	_, err := store.FindByUsernameOrEmail(ctx, "alice")
	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailure))
}

func TestUserStore_ConcurrentDuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(newTestBucket(t), "users.json", discardLogger())

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateUser(ctx, "racer", "racer"+strconv.Itoa(i)+"@x.com", "h")
			if err == nil {
				created.Add(1)
			} else {
				assert.ErrorIs(t, err, repository.ErrUserExists)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestOpenBucket_DataDir(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	bucket, err := OpenBucket(ctx, config.StorageConfig{DataDir: dir})
	require.NoError(t, err)
	defer bucket.Close()

	store := NewUserStore(bucket, "users.json", discardLogger())
	_, err = store.CreateUser(ctx, "alice", "a@x.com", "h")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "users.json"))
}

func TestOpenBucket_URL(t *testing.T) {
	bucket, err := OpenBucket(context.Background(), config.StorageConfig{BucketURL: "mem://"})
	require.NoError(t, err)
	assert.NoError(t, bucket.Close())
}
