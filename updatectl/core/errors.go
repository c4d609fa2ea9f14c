package core

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadArguments       = errors.New("arguments are not acceptable")
	ErrAlreadyExists      = errors.New("resource or task already exists")
	ErrNotFound           = errors.New("resource is not found")
	ErrServiceUnavailable = errors.New("service is currently unavailable")
)
