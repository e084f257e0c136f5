package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

// userStorage is the in-memory implementation of [UserStore].
// Users are kept in a slice in insertion order; lookups are linear scans.
//
// All methods are guarded by mu: readers share the lock, writers hold it
// exclusively. Users are stored and returned by value so callers can never
// mutate the stored records.
type userStorage struct {
	mu    sync.RWMutex
	users []models.User

	// lastID is the highest id ever assigned. Ids are never reused, even when
	// the user holding the highest id is deleted.
	lastID int64

	logger *logger.Logger
}

// NewUserStorage constructs an empty in-memory [UserStore].
func NewUserStorage(logger *logger.Logger) UserStore {
	logger.Debug().Msg("creating user storage")
	return &userStorage{
		users:  make([]models.User, 0, 16),
		logger: logger,
	}
}

func (s *userStorage) List(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.users), nil
}

func (s *userStorage) FindByID(ctx context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	return s.users[idx], nil
}

func (s *userStorage) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.emailTaken(email, excludeID), nil
}

// Insert assigns the next id to user and appends it to the collection.
// Any id carried by user is ignored.
func (s *userStorage) Insert(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email, 0) {
		log.Debug().Str("func", "*userStorage.Insert").Str("email", user.Email).Msg("email already exists")
		return models.User{}, ErrEmailAlreadyExists
	}

	s.lastID++
	user.ID = s.lastID
	s.users = append(s.users, user)

	log.Debug().Str("func", "*userStorage.Insert").Int64("id", user.ID).Msg("user stored")

	return user, nil
}

func (s *userStorage) Update(ctx context.Context, id int64, name, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	if s.emailTaken(email, id) {
		return models.User{}, ErrEmailAlreadyExists
	}

	s.users[idx].Name = name
	s.users[idx].Email = email

	return s.users[idx], nil
}

func (s *userStorage) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrUserNotFound
	}

	s.users = slices.Delete(s.users, idx, idx+1)

	logger.FromContext(ctx).Debug().Str("func", "*userStorage.Delete").Int64("id", id).Msg("user removed")

	return nil
}

// indexOf returns the position of the user with the given id, or -1.
// Callers must hold mu.
func (s *userStorage) indexOf(id int64) int {
	return slices.IndexFunc(s.users, func(u models.User) bool {
		return u.ID == id
	})
}

// emailTaken reports whether a user other than excludeID holds email.
// The comparison is exact and case-sensitive. Callers must hold mu.
func (s *userStorage) emailTaken(email string, excludeID int64) bool {
	return slices.ContainsFunc(s.users, func(u models.User) bool {
		return u.Email == email && u.ID != excludeID
	})
}
