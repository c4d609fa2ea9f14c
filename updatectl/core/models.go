package core

import "time"

type (
	Kind      string
	EventType string

	ContextKey string
)

const JwtTokenContextKey ContextKey = "jwt_token"

const (
	KindPackage Kind = "package"
	KindImage   Kind = "image"
)

type CheckStatus struct {
	State         string `json:"state"`
	Checking      bool   `json:"checking"`
	Authenticated bool   `json:"authenticated"`
	Error         string `json:"error,omitempty"`
	CheckRequired bool   `json:"check_required"`
}

type Update struct {
	Kind          Kind      `json:"kind"`
	Identifier    string    `json:"id"`
	Revision      int64     `json:"revision"`
	LocalVersion  string    `json:"local_version"`
	RemoteVersion string    `json:"remote_version"`
	Title         string    `json:"title"`
	BinarySize    int64     `json:"size"`
	Installed     bool      `json:"installed"`
	State         string    `json:"state"`
	Error         string    `json:"error"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type UpdatesResult struct {
	Updates []Update `json:"updates"`
	Total   int      `json:"total"`
}

// Event is one notification published by the updater.
type Event struct {
	Type EventType `json:"type"`
	At   time.Time `json:"at"`
}
