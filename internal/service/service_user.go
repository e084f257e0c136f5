package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/models"
)

type userService struct {
	userStore store.UserStore

	logger *logger.Logger
}

// NewUserService returns the core UserService. It does not validate input;
// wrap it with [NewUserValidationService] for that.
func NewUserService(userStore store.UserStore, logger *logger.Logger) UserService {
	return &userService{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := s.userStore.ExistsByEmail(ctx, user.Email, 0)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		log.Debug().Str("func", "*userService.CreateUser").Str("email", user.Email).Msg("email already exists")
		return models.User{}, ErrEmailAlreadyExists
	}

	created, err := s.userStore.Insert(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// lost a race with a concurrent create
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Str("func", "*userService.CreateUser").Int64("id", created.ID).Msg("user created")

	return created, nil
}

// UpdateUser replaces name and email of the user with the given id.
// Any id carried by user is ignored.
func (s *userService) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	if _, err := s.userStore.FindByID(ctx, id); err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	taken, err := s.userStore.ExistsByEmail(ctx, user.Email, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return models.User{}, ErrEmailTakenByAnotherUser
	}

	updated, err := s.userStore.Update(ctx, id, user.Name, user.Email)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", ErrEmailTakenByAnotherUser, err)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.UpdateUser").Int64("id", id).Msg("user updated")

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.DeleteUser").Int64("id", id).Msg("user deleted")

	return nil
}
