package jsonstore

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"moosage/config"
	"moosage/internal/domain/entity"
	"moosage/internal/domain/repository"
	"moosage/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// authorRecord is the author snapshot embedded in each stored moosage.
type authorRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	UserID   string `json:"userID"`
}

// moosageRecord is the stored shape of a moosage. Field names match existing moosage documents.
type moosageRecord struct {
	ID             int64        `json:"id"`
	Content        string       `json:"content"`
	Author         authorRecord `json:"author"`
	Time           time.Time    `json:"time"`
	LikedByUserIDs []string     `json:"likedByUserIds"`
	Edited         bool         `json:"edited"`
}

type moosagesDocument struct {
	Moosages []moosageRecord `json:"moosages"`
	NextID   int64           `json:"nextId"`
}

func newMoosagesDocument() *moosagesDocument {
	return &moosagesDocument{Moosages: []moosageRecord{}, NextID: 1}
}

// allocateID returns the next ID and advances the counter. The counter never moves
// below an ID already present, so a hand-edited document cannot produce duplicates.
func (d *moosagesDocument) allocateID() int64 {
	for _, rec := range d.Moosages {
		if rec.ID >= d.NextID {
			d.NextID = rec.ID + 1
		}
	}
	if d.NextID < 1 {
		d.NextID = 1
	}

	id := d.NextID
	d.NextID++

	return id
}

func (d *moosagesDocument) indexOf(id int64) int {
	return slices.IndexFunc(d.Moosages, func(rec moosageRecord) bool { return rec.ID == id })
}

func (r moosageRecord) toEntity() *entity.Moosage {
	m := &entity.Moosage{
		ID:             r.ID,
		Content:        r.Content,
		AuthorID:       r.Author.UserID,
		AuthorUsername: r.Author.Username,
		AuthorEmail:    r.Author.Email,
		CreatedAt:      r.Time,
		LikedBy:        r.LikedByUserIDs,
		Edited:         r.Edited,
	}

	return m.Clone()
}

// toggle flips userID in the liked-by set and reports whether it is now liked.
func (r *moosageRecord) toggle(userID string) bool {
	liked := slices.Contains(r.LikedByUserIDs, userID)
	r.LikedByUserIDs = slices.DeleteFunc(r.LikedByUserIDs, func(id string) bool { return id == userID })
	if !liked {
		r.LikedByUserIDs = append(r.LikedByUserIDs, userID)
	}

	return !liked
}

type moosageStore struct {
	doc   *document[moosagesDocument]
	users repository.UserRepository
	clock service.Clock
}

// MoosageStoreParams holds dependencies for the moosage store, injected by Fx.
type MoosageStoreParams struct {
	fx.In

	Bucket   *blob.Bucket
	Config   *config.Config
	UserRepo repository.UserRepository
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewMoosageRepository is the Fx constructor for the JSON moosage store.
func NewMoosageRepository(params MoosageStoreParams) repository.MoosageRepository {
	return NewMoosageStore(params.Bucket, params.Config.Storage.MoosagesKey, params.UserRepo, params.Clock, params.Logger)
}

// NewMoosageStore returns a MoosageRepository backed by the JSON document at key.
// Authors are resolved through users.
func NewMoosageStore(bucket *blob.Bucket, key string, users repository.UserRepository, clock service.Clock, logger *slog.Logger) repository.MoosageRepository {
	return &moosageStore{
		doc:   newDocument(bucket, key, newMoosagesDocument, logger),
		users: users,
		clock: clock,
	}
}

func (s *moosageStore) Create(ctx context.Context, content, authorID string) (*entity.Moosage, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, repository.ErrAuthorNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "resolve author")
	}

	var created *entity.Moosage
	err = s.doc.update(ctx, func(doc *moosagesDocument) (bool, error) {
		rec := moosageRecord{
			ID:      doc.allocateID(),
			Content: content,
			Author: authorRecord{
				Username: author.Username,
				Email:    author.Email,
				UserID:   author.ID,
			},
			Time:           s.clock.Now(),
			LikedByUserIDs: []string{},
		}
		doc.Moosages = append(doc.Moosages, rec)
		created = rec.toEntity()

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.doc.log(ctx).Info("Moosage created", slog.Int64("moosage_id", created.ID), slog.String("author_id", authorID))

	return created, nil
}

func (s *moosageStore) GetAll(ctx context.Context) ([]*entity.Moosage, error) {
	var all []*entity.Moosage
	err := s.doc.view(ctx, func(doc *moosagesDocument) error {
		all = make([]*entity.Moosage, 0, len(doc.Moosages))
		for _, rec := range doc.Moosages {
			all = append(all, rec.toEntity())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(all, func(a, b *entity.Moosage) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return all, nil
}

func (s *moosageStore) GetByID(ctx context.Context, id int64) (*entity.Moosage, error) {
	var found *entity.Moosage
	err := s.doc.view(ctx, func(doc *moosagesDocument) error {
		idx := doc.indexOf(id)
		if idx < 0 {
			return repository.ErrMoosageNotFound
		}
		found = doc.Moosages[idx].toEntity()

		return nil
	})

	return found, err
}

func (s *moosageStore) ToggleLike(ctx context.Context, id int64, userID string) (*entity.Moosage, error) {
	return s.mutate(ctx, id, func(rec *moosageRecord) {
		rec.toggle(userID)
	})
}

func (s *moosageStore) Update(ctx context.Context, id int64, content string) (*entity.Moosage, error) {
	return s.mutate(ctx, id, func(rec *moosageRecord) {
		rec.Content = content
		rec.Edited = true
	})
}

func (s *moosageStore) Delete(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := s.doc.update(ctx, func(doc *moosagesDocument) (bool, error) {
		idx := doc.indexOf(id)
		if idx < 0 {
			return false, nil
		}
		doc.Moosages = slices.Delete(doc.Moosages, idx, idx+1)
		removed = true

		return true, nil
	})

	return removed, err
}

func (s *moosageStore) mutate(ctx context.Context, id int64, apply func(rec *moosageRecord)) (*entity.Moosage, error) {
	var updated *entity.Moosage
	err := s.doc.update(ctx, func(doc *moosagesDocument) (bool, error) {
		idx := doc.indexOf(id)
		if idx < 0 {
			return false, repository.ErrMoosageNotFound
		}
		apply(&doc.Moosages[idx])
		updated = doc.Moosages[idx].toEntity()

		return true, nil
	})

	return updated, err
}
