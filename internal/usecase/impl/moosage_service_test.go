package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"moosage/config"
	deliverycontext "moosage/internal/delivery/context"
	"moosage/internal/domain/entity"
	domainerrors "moosage/internal/domain/errors"
	"moosage/internal/domain/repository"
	"moosage/internal/domain/service"
	mockRepo "moosage/internal/mocks/repository"
	mockService "moosage/internal/mocks/service"
	"moosage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// moosageServiceFixtures holds all test dependencies for moosage service tests.
type moosageServiceFixtures struct {
	service     usecase.MoosageUsecase
	moosageRepo *mockRepo.MockMoosageRepository
	publisher   *mockService.MockEventPublisher
	clock       *mockService.MockClock
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestMoosageService(t *testing.T) moosageServiceFixtures {
	moosageRepo := mockRepo.NewMockMoosageRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	clock := mockService.NewMockClock(t)

	cfg := &config.Config{}
	cfg.Moosage.MaxContentLength = 10

	svc := NewMoosageService(MoosageServiceParams{
		MoosageRepo: moosageRepo,
		Publisher:   publisher,
		Clock:       clock,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return moosageServiceFixtures{
		service:     svc,
		moosageRepo: moosageRepo,
		publisher:   publisher,
		clock:       clock,
	}
}

func expectEvent(fx moosageServiceFixtures, eventType service.MoosageEventType, moosageID int64, actorID string) {
	fx.clock.EXPECT().Now().Return(fixedNow).Once()
	fx.publisher.EXPECT().
		PublishMoosageEvent(mock.Anything, mock.MatchedBy(func(e *service.MoosageEvent) bool {
			return e.Type == eventType && e.MoosageID == moosageID && e.ActorID == actorID &&
				e.EventID != "" && e.OccurredAt.Equal(fixedNow)
		})).
		Return(nil).
		Once()
}

func TestMoosageService_Create(t *testing.T) {
	fx := createTestMoosageService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	created := &entity.Moosage{ID: 1, Content: "hello", AuthorID: "carol", LikedBy: []string{}}

	fx.moosageRepo.EXPECT().Create(ctx, "hello", "carol").Return(created, nil)
	fx.clock.EXPECT().Now().Return(fixedNow)
	fx.publisher.EXPECT().
		PublishMoosageEvent(ctx, mock.MatchedBy(func(e *service.MoosageEvent) bool {
			return e.RequestID == "req-1" && e.Type == service.MoosageCreated && e.AuthorID == "carol"
		})).
		Return(nil)

	got, err := fx.service.Create(ctx, "carol", "hello")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMoosageService_CreateRejectsBadContent(t *testing.T) {
	fx := createTestMoosageService(t)

	for _, content := range []string{"", "   ", strings.Repeat("x", 11)} {
		_, err := fx.service.Create(context.Background(), "carol", content)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput), "content %q", content)
	}

	fx.moosageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoosageService_CreateUnknownAuthor(t *testing.T) {
	fx := createTestMoosageService(t)
	ctx := context.Background()
	fx.moosageRepo.EXPECT().Create(ctx, "hello", "ghost").Return(nil, repository.ErrAuthorNotFound)

	_, err := fx.service.Create(ctx, "ghost", "hello")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestMoosageService_PublishFailureDoesNotFailMutation(t *testing.T) {
	fx := createTestMoosageService(t)
	ctx := context.Background()
	created := &entity.Moosage{ID: 1, Content: "hello", AuthorID: "carol"}

	fx.moosageRepo.EXPECT().Create(ctx, "hello", "carol").Return(created, nil)
	fx.clock.EXPECT().Now().Return(fixedNow)
	fx.publisher.EXPECT().PublishMoosageEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.Create(ctx, "carol", "hello")
	assert.NoError(t, err)
}

func TestMoosageService_Get(t *testing.T) {
	fx := createTestMoosageService(t)
	ctx := context.Background()

	fx.moosageRepo.EXPECT().GetByID(ctx, int64(9)).Return(nil, repository.ErrMoosageNotFound)
	_, err := fx.service.Get(ctx, 9)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(&entity.Moosage{ID: 1}, nil)
	got, err := fx.service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestMoosageService_List(t *testing.T) {
	fx := createTestMoosageService(t)
	ctx := context.Background()
	all := []*entity.Moosage{{ID: 2}, {ID: 1}}
	fx.moosageRepo.EXPECT().GetAll(ctx).Return(all, nil)

	got, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestMoosageService_ToggleLike(t *testing.T) {
	fx := createTestMoosageService(t)
	ctx := context.Background()

	fx.moosageRepo.EXPECT().ToggleLike(ctx, int64(1), "dave").
		Return(&entity.Moosage{ID: 1, AuthorID: "carol", LikedBy: []string{"dave"}}, nil).Once()
	expectEvent(fx, service.MoosageLiked, 1, "dave")

	liked, err := fx.service.ToggleLike(ctx, 1, "dave")
	require.NoError(t, err)
	assert.Equal(t, []string{"dave"}, liked.LikedBy)

	fx.moosageRepo.EXPECT().ToggleLike(ctx, int64(1), "dave").
		Return(&entity.Moosage{ID: 1, AuthorID: "carol", LikedBy: []string{}}, nil).Once()
	expectEvent(fx, service.MoosageUnliked, 1, "dave")

	unliked, err := fx.service.ToggleLike(ctx, 1, "dave")
	require.NoError(t, err)
	assert.Empty(t, unliked.LikedBy)

	fx.moosageRepo.EXPECT().ToggleLike(ctx, int64(5), "dave").Return(nil, repository.ErrMoosageNotFound).Once()
	_, err = fx.service.ToggleLike(ctx, 5, "dave")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMoosageService_Update(t *testing.T) {
	owned := &entity.Moosage{ID: 1, Content: "hello", AuthorID: "carol"}

	t.Run("author", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)
		fx.moosageRepo.EXPECT().Update(ctx, int64(1), "edited").
			Return(&entity.Moosage{ID: 1, Content: "edited", AuthorID: "carol", Edited: true}, nil)
		expectEvent(fx, service.MoosageUpdated, 1, "carol")

		got, err := fx.service.Update(ctx, 1, "carol", "edited")
		require.NoError(t, err)
		assert.True(t, got.Edited)
	})

	t.Run("not author", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)

		_, err := fx.service.Update(ctx, 1, "mallory", "edited")
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		fx.moosageRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing beats forbidden", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(7)).Return(nil, repository.ErrMoosageNotFound)

		_, err := fx.service.Update(ctx, 7, "mallory", "edited")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
		assert.NotErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("empty content", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)

		_, err := fx.service.Update(ctx, 1, "carol", " ")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})
}

func TestMoosageService_Delete(t *testing.T) {
	owned := &entity.Moosage{ID: 1, Content: "hello", AuthorID: "carol"}

	t.Run("author", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)
		fx.moosageRepo.EXPECT().Delete(ctx, int64(1)).Return(true, nil)
		expectEvent(fx, service.MoosageDeleted, 1, "carol")

		assert.NoError(t, fx.service.Delete(ctx, 1, "carol"))
	})

	t.Run("not author", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)

		assert.ErrorIs(t, fx.service.Delete(ctx, 1, "mallory"), domainerrors.ErrForbidden)
	})

	t.Run("missing beats forbidden", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(7)).Return(nil, repository.ErrMoosageNotFound)

		assert.ErrorIs(t, fx.service.Delete(ctx, 7, "mallory"), domainerrors.ErrNotFound)
	})

	t.Run("removed concurrently", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)
		fx.moosageRepo.EXPECT().Delete(ctx, int64(1)).Return(false, nil)

		assert.ErrorIs(t, fx.service.Delete(ctx, 1, "carol"), domainerrors.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestMoosageService(t)
		ctx := context.Background()
		fx.moosageRepo.EXPECT().GetByID(ctx, int64(1)).Return(owned, nil)
		fx.moosageRepo.EXPECT().Delete(ctx, int64(1)).Return(false, domainerrors.ErrStorageFailure.WrapMessage("write"))

		err := fx.service.Delete(ctx, 1, "carol")
		assert.Equal(t, domainerrors.KindStorageFailure, domainerrors.KindOf(err))
	})
}
