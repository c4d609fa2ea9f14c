package db

import (
	"click-updater/updater/core"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite"

	// timestamps are stored as sortable UTC text so both backends compare them lexically
	timeLayout = "2006-01-02T15:04:05.000Z"

	pruneAge = 30 * 24 * time.Hour
)

const (
	// upsert
	upsertUpdate = `
		INSERT INTO updates (
			kind, id, revision, local_version, remote_version, state,
			created_at_utc, updated_at_utc, title, download_hash, size,
			icon_url, download_url, command, changelog, token, installed,
			progress, automatic, download_id, error
		) VALUES (
			:kind, :id, :revision, :local_version, :remote_version, :state,
			:created_at_utc, :updated_at_utc, :title, :download_hash, :size,
			:icon_url, :download_url, :command, :changelog, :token, :installed,
			:progress, :automatic, :download_id, :error
		)
		ON CONFLICT (id, revision) DO UPDATE SET
			kind = excluded.kind,
			local_version = excluded.local_version,
			remote_version = excluded.remote_version,
			state = excluded.state,
			created_at_utc = excluded.created_at_utc,
			updated_at_utc = excluded.updated_at_utc,
			title = excluded.title,
			download_hash = excluded.download_hash,
			size = excluded.size,
			icon_url = excluded.icon_url,
			download_url = excluded.download_url,
			command = excluded.command,
			changelog = excluded.changelog,
			token = excluded.token,
			installed = excluded.installed,
			progress = excluded.progress,
			automatic = excluded.automatic,
			download_id = excluded.download_id,
			error = excluded.error
	`
	setCheckedAt = `UPDATE meta SET checked_at_utc = ? WHERE id = 1`

	// select
	selectUpdate        = `SELECT * FROM updates WHERE id = ? AND revision = ?`
	selectUpdates       = `SELECT * FROM updates ORDER BY id, revision`
	selectUpdatesOfKind = `SELECT * FROM updates WHERE kind = ? ORDER BY id, revision`
	selectCheckedAt     = `SELECT checked_at_utc FROM meta WHERE id = 1`

	// delete
	deleteUpdate     = `DELETE FROM updates WHERE id = ? AND revision = ?`
	deleteInstalled  = `DELETE FROM updates WHERE installed AND updated_at_utc != '' AND updated_at_utc < ?`
	deleteAllUpdates = `DELETE FROM updates`
	resetCheckedAt   = `UPDATE meta SET checked_at_utc = '' WHERE id = 1`
)

func init() {
	sqlx.BindDriver(driverSQLite, sqlx.QUESTION)
}

type updateRow struct {
	Kind          string `db:"kind"`
	Identifier    string `db:"id"`
	Revision      int64  `db:"revision"`
	LocalVersion  string `db:"local_version"`
	RemoteVersion string `db:"remote_version"`
	State         string `db:"state"`
	CreatedAt     string `db:"created_at_utc"`
	UpdatedAt     string `db:"updated_at_utc"`
	Title         string `db:"title"`
	DownloadHash  string `db:"download_hash"`
	Size          int64  `db:"size"`
	IconURL       string `db:"icon_url"`
	DownloadURL   string `db:"download_url"`
	Command       string `db:"command"`
	Changelog     string `db:"changelog"`
	Token         string `db:"token"`
	Installed     bool   `db:"installed"`
	Progress      int    `db:"progress"`
	Automatic     bool   `db:"automatic"`
	DownloadID    string `db:"download_id"`
	Error         string `db:"error"`
}

func toRow(u core.Update) updateRow {
	return updateRow{
		Kind:          string(u.Kind),
		Identifier:    u.Identifier,
		Revision:      u.Revision,
		LocalVersion:  u.LocalVersion,
		RemoteVersion: u.RemoteVersion,
		State:         string(u.State),
		CreatedAt:     formatTime(u.CreatedAt),
		UpdatedAt:     formatTime(u.UpdatedAt),
		Title:         u.Title,
		DownloadHash:  u.DownloadHash,
		Size:          u.BinarySize,
		IconURL:       u.IconURL,
		DownloadURL:   u.DownloadURL,
		Command:       u.Command,
		Changelog:     u.Changelog,
		Token:         u.Token,
		Installed:     u.Installed,
		Progress:      u.Progress,
		Automatic:     u.Automatic,
		DownloadID:    u.DownloadID,
		Error:         u.Error,
	}
}

func (r updateRow) toUpdate() core.Update {
	return core.Update{
		Kind:          core.Kind(r.Kind),
		Identifier:    r.Identifier,
		Revision:      r.Revision,
		LocalVersion:  r.LocalVersion,
		RemoteVersion: r.RemoteVersion,
		State:         core.UpdateState(r.State),
		CreatedAt:     parseTime(r.CreatedAt),
		UpdatedAt:     parseTime(r.UpdatedAt),
		Title:         r.Title,
		DownloadHash:  r.DownloadHash,
		BinarySize:    r.Size,
		IconURL:       r.IconURL,
		DownloadURL:   r.DownloadURL,
		Command:       r.Command,
		Changelog:     r.Changelog,
		Token:         r.Token,
		Installed:     r.Installed,
		Progress:      r.Progress,
		Automatic:     r.Automatic,
		DownloadID:    r.DownloadID,
		Error:         r.Error,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

type DB struct {
	log      *slog.Logger
	conn     *sqlx.DB
	driver   string
	notifier core.Publisher
	clock    func() time.Time
}

// New opens the update store. A postgres:// address selects PostgreSQL,
// anything else is treated as an SQLite database file.
func New(log *slog.Logger, address string, notifier core.Publisher) (*DB, error) {
	driver, dsn, err := resolve(address)
	if err != nil {
		log.Error("bad database address", "address", address, "error", err)
		return nil, err
	}
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	if driver == driverSQLite {
		// one writer at a time keeps sqlite from returning SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}
	log.Debug("connected to database", "driver", driver)
	return &DB{
		log:      log,
		conn:     db,
		driver:   driver,
		notifier: notifier,
		clock:    time.Now,
	}, nil
}

func resolve(address string) (driver, dsn string, err error) {
	switch {
	case address == "":
		return "", "", fmt.Errorf("%w: empty database address", core.ErrBadArguments)
	case strings.HasPrefix(address, "postgres://"), strings.HasPrefix(address, "postgresql://"):
		return driverPostgres, address, nil
	}
	path := strings.TrimPrefix(address, "sqlite://")
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, ":memory:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", "", fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	if !strings.Contains(path, "?") {
		path += "?_pragma=busy_timeout(5000)"
	}
	return driverSQLite, path, nil
}

func (db *DB) Close() {
	if err := db.conn.Close(); err != nil {
		db.log.Warn("failed to close database connection", "error", err)
	}
}

func (db *DB) Add(ctx context.Context, update core.Update) error {
	if update.Identifier == "" {
		return fmt.Errorf("%w: empty identifier", core.ErrBadArguments)
	}
	if update.Kind == "" {
		update.Kind = core.KindPackage
	}
	if update.State == "" {
		update.State = core.UpdateUnknown
	}
	if _, err := db.conn.NamedExecContext(ctx, upsertUpdate, toRow(update)); err != nil {
		return fmt.Errorf("failed to upsert into updates table: %w", err)
	}
	db.notify()
	return nil
}

func (db *DB) Remove(ctx context.Context, update core.Update) error {
	if _, err := db.conn.ExecContext(ctx, db.conn.Rebind(deleteUpdate), update.Identifier, update.Revision); err != nil {
		return fmt.Errorf("failed to delete from updates table: %w", err)
	}
	db.notify()
	return nil
}

func (db *DB) Get(ctx context.Context, identifier string, revision int64) (core.Update, error) {
	var row updateRow
	err := db.conn.GetContext(ctx, &row, db.conn.Rebind(selectUpdate), identifier, revision)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Update{}, core.ErrNotFound
	}
	if err != nil {
		return core.Update{}, fmt.Errorf("failed to select from updates table: %w", err)
	}
	return row.toUpdate(), nil
}

// List returns the stored updates of one kind, or all of them for an empty kind.
func (db *DB) List(ctx context.Context, kind core.Kind) ([]core.Update, error) {
	var rows []updateRow
	var err error
	if kind == "" {
		err = db.conn.SelectContext(ctx, &rows, selectUpdates)
	} else {
		err = db.conn.SelectContext(ctx, &rows, db.conn.Rebind(selectUpdatesOfKind), string(kind))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select from updates table: %w", err)
	}
	updates := make([]core.Update, len(rows))
	for i, row := range rows {
		updates[i] = row.toUpdate()
	}
	return updates, nil
}

// PruneDB deletes installed updates last touched more than 30 days ago.
func (db *DB) PruneDB(ctx context.Context) error {
	cutoff := formatTime(db.clock().Add(-pruneAge))
	res, err := db.conn.ExecContext(ctx, db.conn.Rebind(deleteInstalled), cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune updates table: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		db.log.Debug("pruned installed updates", "count", n)
		db.notify()
	}
	return nil
}

func (db *DB) LastCheckDate(ctx context.Context) (time.Time, error) {
	var checkedAt string
	if err := db.conn.GetContext(ctx, &checkedAt, selectCheckedAt); err != nil {
		return time.Time{}, fmt.Errorf("failed to select from meta table: %w", err)
	}
	return parseTime(checkedAt), nil
}

func (db *DB) SetLastCheckDate(ctx context.Context, date time.Time) error {
	if _, err := db.conn.ExecContext(ctx, db.conn.Rebind(setCheckedAt), formatTime(date)); err != nil {
		return fmt.Errorf("failed to update meta table: %w", err)
	}
	return nil
}

func (db *DB) Drop(ctx context.Context) error {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			db.log.Error("failed to rollback transaction", "error", err)
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllUpdates); err != nil {
		return fmt.Errorf("failed to truncate updates table: %w", err)
	}
	if _, err = tx.ExecContext(ctx, resetCheckedAt); err != nil {
		return fmt.Errorf("failed to reset meta table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	db.notify()
	return nil
}

func (db *DB) notify() {
	if db.notifier == nil {
		return
	}
	if err := db.notifier.Publish(core.EventStoreChanged); err != nil {
		db.log.Warn("failed to publish store change", "error", err)
	}
}
