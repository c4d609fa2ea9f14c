package core

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

type Updater interface {
	Check(ctx context.Context) error
	Cancel(ctx context.Context) error
	Retry(ctx context.Context, identifier string, revision int64) error
	Status(ctx context.Context) CheckStatus
	Updates(ctx context.Context, kind Kind) ([]Update, error)
	Drop(ctx context.Context) error
	IsCheckRequired(ctx context.Context) (bool, error)
}

type Store interface {
	Add(ctx context.Context, update Update) error
	Remove(ctx context.Context, update Update) error
	Get(ctx context.Context, identifier string, revision int64) (Update, error)
	List(ctx context.Context, kind Kind) ([]Update, error)
	PruneDB(ctx context.Context) error
	LastCheckDate(ctx context.Context) (time.Time, error)
	SetLastCheckDate(ctx context.Context, date time.Time) error
	Drop(ctx context.Context) error
}

type ManifestProvider interface {
	Request(ctx context.Context) ([]ManifestEntry, error)
}

type SigningToken interface {
	IsValid() bool
	SignURL(rawURL, method string) (string, error)
}

type CredentialProvider interface {
	RequestCredentials(ctx context.Context) (SigningToken, error)
	InvalidateCredentials(ctx context.Context) error
}

type MetadataClient interface {
	RequestMetadata(ctx context.Context, url string, names []string) ([]RemotePackage, error)
	RequestToken(ctx context.Context, url string) (string, error)
	Cancel()
}

type TokenDownloader interface {
	Download(ctx context.Context, signedURL string) (Update, error)
	Cancel()
}

type TokenDownloaderFactory interface {
	New(update Update) TokenDownloader
}

type Publisher interface {
	Publish(event EventType) error
}

type Authenticator interface {
	CreateToken(name, password string) (string, error)
	ValidateToken(tokenString string) error
}
