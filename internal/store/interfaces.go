package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_store_mock.go -package=mock

// UserStore is the authoritative collection of users.
// Implementations must be safe for concurrent use.
type UserStore interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (models.User, error)

	// ExistsByEmail reports whether a user other than excludeID holds email.
	// An excludeID of 0 excludes nobody.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	// Insert assigns the next id to user, stores it and returns the stored record.
	Insert(ctx context.Context, user models.User) (models.User, error)

	// Update replaces name and email of the user with the given id.
	Update(ctx context.Context, id int64, name, email string) (models.User, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id int64) error
}
