package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Synchronize reconciles the stored package updates with a freshly received
// manifest:
//   - a record whose remote version is now installed is marked installed;
//   - a record found by identifier only has its local version fast-forwarded
//     and, if it still needs updating, is reopened;
//   - a record absent from the manifest is removed.
func Synchronize(ctx context.Context, log *slog.Logger, store Store, manifest []ManifestEntry, now time.Time) error {
	stored, err := store.List(ctx, KindPackage)
	if err != nil {
		return fmt.Errorf("failed to list stored updates: %w", err)
	}

	installed := make(map[string]ManifestEntry, len(manifest))
	for _, entry := range manifest {
		installed[entry.Identifier] = entry
	}

	for _, update := range stored {
		entry, found := installed[update.Identifier]
		switch {
		case found && entry.Version == update.RemoteVersion:
			update.Installed = true
			update.State = UpdateInstalled
			if update.UpdatedAt.IsZero() {
				update.UpdatedAt = now
			}
			update.Error = ""
			update.Token = ""
			if err := store.Add(ctx, update); err != nil {
				return fmt.Errorf("failed to mark %s installed: %w", update.Identifier, err)
			}
		case found:
			update.LocalVersion = entry.Version
			if update.IsUpdateRequired() && update.Installed {
				update.Installed = false
				update.State = UpdateAvailable
			}
			if err := store.Add(ctx, update); err != nil {
				return fmt.Errorf("failed to update %s: %w", update.Identifier, err)
			}
		default:
			log.Debug("removing update no longer installed", "identifier", update.Identifier, "revision", update.Revision)
			if err := store.Remove(ctx, update); err != nil {
				return fmt.Errorf("failed to remove %s: %w", update.Identifier, err)
			}
		}
	}
	return nil
}
