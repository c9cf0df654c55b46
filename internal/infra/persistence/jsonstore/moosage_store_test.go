package jsonstore

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"moosage/internal/domain/entity"
	"moosage/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

type moosageFixtures struct {
	bucket *blob.Bucket
	users  repository.UserRepository
	store  repository.MoosageRepository
	carol  *entity.User
}

func createTestMoosageStore(t *testing.T) moosageFixtures {
	t.Helper()
	bucket := newTestBucket(t)
	users := NewUserStore(bucket, "users.json", discardLogger())
	carol, err := users.CreateUser(context.Background(), "carol", "carol@x.com", "h")
	require.NoError(t, err)

	return moosageFixtures{
		bucket: bucket,
		users:  users,
		store:  NewMoosageStore(bucket, "moosages.json", users, newStubClock(time.Second), discardLogger()),
		carol:  carol,
	}
}

func TestMoosageStore_Create(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()

	m, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)
	assert.Equal(t, "hello", m.Content)
	assert.Equal(t, fx.carol.ID, m.AuthorID)
	assert.Equal(t, "carol", m.AuthorUsername)
	assert.Empty(t, m.LikedBy)
	assert.False(t, m.Edited)

	second, err := fx.store.Create(ctx, "again", fx.carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestMoosageStore_CreateUnknownAuthor(t *testing.T) {
	fx := createTestMoosageStore(t)

	_, err := fx.store.Create(context.Background(), "hello", "ghost")
	assert.ErrorIs(t, err, repository.ErrAuthorNotFound)
}

func TestMoosageStore_IDsNeverReusedAfterDelete(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()

	first, err := fx.store.Create(ctx, "one", fx.carol.ID)
	require.NoError(t, err)
	removed, err := fx.store.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, removed)

	next, err := fx.store.Create(ctx, "two", fx.carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestMoosageStore_GetAllNewestFirst(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()

	for _, content := range []string{"t1", "t2", "t3"} {
		_, err := fx.store.Create(ctx, content, fx.carol.ID)
		require.NoError(t, err)
	}

	all, err := fx.store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t3", all[0].Content)
	assert.Equal(t, "t2", all[1].Content)
	assert.Equal(t, "t1", all[2].Content)
}

func TestMoosageStore_GetAllTiesKeepInsertionOrder(t *testing.T) {
	bucket := newTestBucket(t)
	users := NewUserStore(bucket, "users.json", discardLogger())
	carol, err := users.CreateUser(context.Background(), "carol", "carol@x.com", "h")
	require.NoError(t, err)
	store := NewMoosageStore(bucket, "moosages.json", users, newStubClock(0), discardLogger())

	ctx := context.Background()
	for _, content := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, content, carol.ID)
		require.NoError(t, err)
	}

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].Content, all[1].Content, all[2].Content})
}

func TestMoosageStore_GetAllReturnsIndependentCopies(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()
	_, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)

	all, err := fx.store.GetAll(ctx)
	require.NoError(t, err)
	all[0].Content = "tampered"
	all[0].LikedBy = append(all[0].LikedBy, "mallory")

	fresh, err := fx.store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", fresh.Content)
	assert.Empty(t, fresh.LikedBy)
}

func TestMoosageStore_ToggleLike(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()
	m, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)

	liked, err := fx.store.ToggleLike(ctx, m.ID, "dave")
	require.NoError(t, err)
	assert.Equal(t, []string{"dave"}, liked.LikedBy)

	other, err := fx.store.ToggleLike(ctx, m.ID, "erin")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dave", "erin"}, other.LikedBy)

	unliked, err := fx.store.ToggleLike(ctx, m.ID, "dave")
	require.NoError(t, err)
	assert.Equal(t, []string{"erin"}, unliked.LikedBy)

	_, err = fx.store.ToggleLike(ctx, 99, "dave")
	assert.ErrorIs(t, err, repository.ErrMoosageNotFound)
}

func TestMoosageStore_ConcurrentLikesAreNotLost(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()
	m, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)

	likers := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8"}
	var wg sync.WaitGroup
	for _, userID := range likers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.store.ToggleLike(ctx, m.ID, userID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := fx.store.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, likers, got.LikedBy)
}

func TestMoosageStore_Update(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()
	m, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)

	same, err := fx.store.Update(ctx, m.ID, "hello")
	require.NoError(t, err)
	assert.True(t, same.Edited)
	assert.Equal(t, "hello", same.Content)

	empty, err := fx.store.Update(ctx, m.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "", empty.Content)
	assert.True(t, empty.Edited)

	_, err = fx.store.Update(ctx, 99, "x")
	assert.ErrorIs(t, err, repository.ErrMoosageNotFound)
}

func TestMoosageStore_Delete(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()
	m, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)

	removed, err := fx.store.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = fx.store.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = fx.store.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrMoosageNotFound)
}

func TestMoosageStore_WireFormat(t *testing.T) {
	fx := createTestMoosageStore(t)
	ctx := context.Background()
	m, err := fx.store.Create(ctx, "hello", fx.carol.ID)
	require.NoError(t, err)
	_, err = fx.store.ToggleLike(ctx, m.ID, "dave")
	require.NoError(t, err)

	var raw struct {
		Moosages []map[string]json.RawMessage `json:"moosages"`
		NextID   int64                        `json:"nextId"`
	}
	require.NoError(t, json.Unmarshal(readRaw(t, fx.bucket, "moosages.json"), &raw))
	assert.Equal(t, int64(2), raw.NextID)
	require.Len(t, raw.Moosages, 1)

	rec := raw.Moosages[0]
	assert.ElementsMatch(t, []string{"id", "content", "author", "time", "likedByUserIds", "edited"}, keysOf(rec))
	assert.JSONEq(t, `1`, string(rec["id"]))
	assert.JSONEq(t, `["dave"]`, string(rec["likedByUserIds"]))
	assert.JSONEq(t, `{"username":"carol","email":"carol@x.com","userID":"`+fx.carol.ID+`"}`, string(rec["author"]))
	assert.JSONEq(t, `"2024-05-01T12:00:00Z"`, string(rec["time"]))
}

func TestMoosageStore_ReadsExistingDocument(t *testing.T) {
	ctx := context.Background()
	fx := createTestMoosageStore(t)
	existing := `{"moosages":[{"id":7,"content":"old","author":{"username":"carol","email":"carol@x.com","password":"h","userID":"` +
		fx.carol.ID + `"},"time":"2023-01-01T00:00:00Z","likedByUserIds":["x"]}],"nextId":3}`
	require.NoError(t, fx.bucket.WriteAll(ctx, "moosages.json", []byte(existing), nil))

	old, err := fx.store.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "old", old.Content)
	assert.False(t, old.Edited)
	assert.Equal(t, []string{"x"}, old.LikedBy)

	created, err := fx.store.Create(ctx, "new", fx.carol.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
}

func keysOf(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}
