package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-service/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of
// [models.User] fields.
const (
	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldEmail targets the email address of a user.
	FieldEmail = "email"
)

// userFields maps field name constants to struct field names of models.User.
var userFields = map[string]string{
	FieldName:  "Name",
	FieldEmail: "Email",
}

// UserValidator implements [Validator] for models.User.
//
// Rules are declared as `validate` struct tags on the model and checked by
// go-playground/validator. Every field is evaluated; for each field only the
// first broken rule is reported.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator and registers the custom
// "notblank" and "emailaddress" rules used by the user model.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// RegisterValidation only fails on empty tag names or builtin clashes.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("emailaddress", func(fl validator.FieldLevel) bool {
		return isEmailAddress(fl.Field().String())
	})

	return &UserValidator{validate: v}
}

// isEmailAddress accepts a single-line value with exactly one "@" that is
// neither the first nor the last character. Anything else about the local
// part or the domain is left to the mail system.
func isEmailAddress(s string) bool {
	if strings.ContainsAny(s, "\r\n") {
		return false
	}

	at := strings.IndexByte(s, '@')
	return at > 0 && at == strings.LastIndexByte(s, '@') && at != len(s)-1
}

// Validate checks a models.User or *models.User.
// Optional fields ([FieldName], [FieldEmail]) restrict the check; when omitted
// all fields are validated.
//
// Returns nil when valid, [ValidationErrors] with ordered messages otherwise,
// [ErrUnsupportedType] for other types and [ErrUnknownField] for unknown field names.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, user)
	} else {
		structFields := make([]string, 0, len(fields))
		for _, f := range fields {
			structField, ok := userFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			structFields = append(structFields, structField)
		}
		err = v.validate.StructPartialCtx(ctx, user, structFields...)
	}

	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("error validating user: %w", err)
	}

	messages := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, userMessage(fe))
	}

	return messages
}

// userMessage converts a single rule violation into the message shown to
// API clients.
func userMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "emailaddress":
		return "Invalid email format."
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
