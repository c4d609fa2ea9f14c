package core

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

type Updater interface {
	Login(ctx context.Context, name, password string) (string, error)
	Status(ctx context.Context) (CheckStatus, error)
	Updates(ctx context.Context, kind Kind) (UpdatesResult, error)
	Check(ctx context.Context) error
	Cancel(ctx context.Context) error
	Retry(ctx context.Context, identifier string, revision int64) error
	Drop(ctx context.Context) error
}

type EventSource interface {
	Watch(ctx context.Context, handler func(Event)) error
}
