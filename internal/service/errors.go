package service

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")

	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrEmailTakenByAnotherUser = errors.New("another user with this email already exists")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
