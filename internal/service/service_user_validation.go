package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-service/internal/validators"
	"github.com/MKhiriev/go-user-service/models"
)

// UserValidationService checks incoming users before they reach the wrapped
// service. Validation errors are wrapped with [ErrValidationFailed] and keep
// the [validators.ValidationErrors] message list reachable via errors.As.
//
// Only the fields a client may write are checked; the id comes from the
// store, so whatever the payload carries there is not validated.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

// writableUserFields lists the user fields accepted from request payloads.
var writableUserFields = []string{validators.FieldName, validators.FieldEmail}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, writableUserFields...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.CreateUser(ctx, user)
}

// UpdateUser validates the payload before the target user is looked up.
func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user, writableUserFields...); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.UpdateUser(ctx, id, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
