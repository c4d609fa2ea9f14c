package core

import "time"

type Kind string

const (
	KindPackage Kind = "package"
	KindImage   Kind = "image"
)

type UpdateState string

const (
	UpdateUnknown           UpdateState = "unknown"
	UpdateAvailable         UpdateState = "available"
	UpdateQueuedForDownload UpdateState = "queued_for_download"
	UpdateDownloading       UpdateState = "downloading"
	UpdateDownloadPaused    UpdateState = "download_paused"
	UpdateDownloaded        UpdateState = "downloaded"
	UpdateInstalling        UpdateState = "installing"
	UpdateInstalled         UpdateState = "installed"
	UpdateFailed            UpdateState = "failed"
)

type UpdateKey struct {
	Identifier string
	Revision   int64
}

// Update is both a check candidate and the persisted store record.
type Update struct {
	Kind          Kind        `json:"kind"`
	Identifier    string      `json:"id"`
	Revision      int64       `json:"revision"`
	LocalVersion  string      `json:"local_version"`
	RemoteVersion string      `json:"remote_version"`
	Title         string      `json:"title"`
	DownloadURL   string      `json:"download_url"`
	DownloadHash  string      `json:"download_hash"`
	BinarySize    int64       `json:"size"`
	IconURL       string      `json:"icon_url"`
	Command       string      `json:"command"`
	Changelog     string      `json:"changelog"`
	Token         string      `json:"-"`
	Installed     bool        `json:"installed"`
	State         UpdateState `json:"state"`
	Progress      int         `json:"progress"`
	Automatic     bool        `json:"automatic"`
	DownloadID    string      `json:"download_id"`
	Error         string      `json:"error"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (u Update) Key() UpdateKey {
	return UpdateKey{Identifier: u.Identifier, Revision: u.Revision}
}

func (u Update) IsUpdateRequired() bool {
	return IsUpdateRequired(u.LocalVersion, u.RemoteVersion)
}

// ManifestEntry is one installed package as reported by the package lister.
type ManifestEntry struct {
	Identifier string
	Title      string
	Version    string
	AppID      string
}

// Platform describes the device to the store: its dpkg architecture and the
// click frameworks it has installed.
type Platform struct {
	Architecture string
	Frameworks   []string
}

// RemotePackage is one object of the click-metadata response.
type RemotePackage struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	Revision       int64  `json:"revision"`
	IconURL        string `json:"icon_url"`
	DownloadURL    string `json:"download_url"`
	DownloadSHA512 string `json:"download_sha512"`
	Changelog      string `json:"changelog"`
	BinaryFilesize int64  `json:"binary_filesize"`
	Title          string `json:"title"`
}

type EventType string

const (
	EventCheckStarted    EventType = "check_started"
	EventCheckCompleted  EventType = "check_completed"
	EventCheckFailed     EventType = "check_failed"
	EventCheckCanceled   EventType = "check_canceled"
	EventCredentialError EventType = "credential_error"
	EventAuthenticated   EventType = "authenticated"
	EventDeauthenticated EventType = "deauthenticated"
	EventStoreChanged    EventType = "store_changed"
)

type CheckStatus struct {
	State         State  `json:"state"`
	Checking      bool   `json:"checking"`
	Authenticated bool   `json:"authenticated"`
	Error         string `json:"error,omitempty"`
	CheckRequired bool   `json:"check_required"`
}
