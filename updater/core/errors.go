package core

import "errors"

var (
	ErrBadArguments       = errors.New("arguments are not acceptable")
	ErrAlreadyExists      = errors.New("resource or task already exists")
	ErrNotFound           = errors.New("resource is not found")
	ErrServiceUnavailable = errors.New("service is currently unavailable")
)

// Transport and remote errors. Cycle-level occurrences abort the check.
var (
	ErrNetwork     = errors.New("network error")
	ErrServer      = errors.New("server error")
	ErrCredentials = errors.New("credential error")
	ErrEmptyToken  = errors.New("empty download token")
)

var ErrProcess = errors.New("package lister failed")

var (
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrCredentialsDeleted  = errors.New("credentials deleted")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
