package core

import (
	version "github.com/knqyf263/go-deb-version"
)

// IsUpdateRequired reports whether local sorts strictly before remote in
// Debian version ordering. An unparsable remote version never requires an
// update; an unparsable local version (e.g. empty) always does.
func IsUpdateRequired(local, remote string) bool {
	remoteVer, err := version.NewVersion(remote)
	if err != nil {
		return false
	}
	localVer, err := version.NewVersion(local)
	if err != nil {
		return true
	}
	return localVer.LessThan(remoteVer)
}
