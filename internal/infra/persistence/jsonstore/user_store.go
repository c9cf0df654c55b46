package jsonstore

import (
	"context"
	"log/slog"
	"slices"

	"moosage/config"
	"moosage/internal/domain/entity"
	"moosage/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// userRecord is the stored shape of a user. Field names match existing user documents.
type userRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   string `json:"userID"`
}

type usersDocument struct {
	Users []userRecord `json:"users"`
}

func newUsersDocument() *usersDocument {
	return &usersDocument{Users: []userRecord{}}
}

func (r userRecord) toEntity() *entity.User {
	return &entity.User{
		ID:           r.UserID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.Password,
	}
}

type userStore struct {
	doc   *document[usersDocument]
	newID func() string
}

// UserStoreParams holds dependencies for the user store, injected by Fx.
type UserStoreParams struct {
	fx.In

	Bucket *blob.Bucket
	Config *config.Config
	Logger *slog.Logger
}

// NewUserRepository is the Fx constructor for the JSON user store.
func NewUserRepository(params UserStoreParams) repository.UserRepository {
	return NewUserStore(params.Bucket, params.Config.Storage.UsersKey, params.Logger)
}

// NewUserStore returns a UserRepository backed by the JSON document at key.
func NewUserStore(bucket *blob.Bucket, key string, logger *slog.Logger) repository.UserRepository {
	return &userStore{
		doc:   newDocument(bucket, key, newUsersDocument, logger),
		newID: uuid.NewString,
	}
}

func (s *userStore) CreateUser(ctx context.Context, username, email, passwordHash string) (*entity.User, error) {
	var created *entity.User
	err := s.doc.update(ctx, func(doc *usersDocument) (bool, error) {
		for _, rec := range doc.Users {
			if rec.Username == username || rec.Email == email {
				return false, repository.ErrUserExists
			}
		}

		rec := userRecord{
			Username: username,
			Email:    email,
			Password: passwordHash,
			UserID:   s.uniqueID(doc),
		}
		doc.Users = append(doc.Users, rec)
		created = rec.toEntity()

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.doc.log(ctx).Info("User created", slog.String("user_id", created.ID), slog.String("username", username))

	return created, nil
}

func (s *userStore) uniqueID(doc *usersDocument) string {
	for {
		id := s.newID()
		taken := slices.ContainsFunc(doc.Users, func(rec userRecord) bool { return rec.UserID == id })
		if !taken && id != "" {
			return id
		}
	}
}

func (s *userStore) FindByUsernameOrEmail(ctx context.Context, key string) (*entity.User, error) {
	if key == "" {
		return nil, repository.ErrUserNotFound
	}

	return s.findFirst(ctx, func(rec userRecord) bool {
		return rec.Username == key || rec.Email == key
	})
}

func (s *userStore) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, repository.ErrUserNotFound
	}

	return s.findFirst(ctx, func(rec userRecord) bool { return rec.UserID == userID })
}

func (s *userStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}

	return s.exists(ctx, func(rec userRecord) bool { return rec.Username == username })
}

func (s *userStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	return s.exists(ctx, func(rec userRecord) bool { return rec.Email == email })
}

func (s *userStore) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := s.doc.view(ctx, func(doc *usersDocument) error {
		users = make([]*entity.User, 0, len(doc.Users))
		for _, rec := range doc.Users {
			users = append(users, rec.toEntity())
		}

		return nil
	})

	return users, err
}

func (s *userStore) findFirst(ctx context.Context, match func(userRecord) bool) (*entity.User, error) {
	var found *entity.User
	err := s.doc.view(ctx, func(doc *usersDocument) error {
		idx := slices.IndexFunc(doc.Users, match)
		if idx < 0 {
			return repository.ErrUserNotFound
		}
		found = doc.Users[idx].toEntity()

		return nil
	})

	return found, err
}

func (s *userStore) exists(ctx context.Context, match func(userRecord) bool) (bool, error) {
	var found bool
	err := s.doc.view(ctx, func(doc *usersDocument) error {
		found = slices.ContainsFunc(doc.Users, match)

		return nil
	})

	return found, err
}
