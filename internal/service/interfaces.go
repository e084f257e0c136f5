//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

// UserService is the business layer over the user store.
// Errors are wrapped; match them with [errors.Is] against the sentinels of
// this package and of the store package.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
