package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	checkThrottle   = 30 * time.Minute
	tokenReuseLimit = 24 * time.Hour
	eventQueueSize  = 64

	invalidCredentialsMessage = "Invalid credentials, please sign in again"
)

type Options struct {
	MetadataURL       string
	IgnoreCredentials bool
	Clock             func() time.Time
}

// Orchestrator drives update check cycles. All cycle state is owned by the
// goroutine running Run; every other entry point posts work to it.
type Orchestrator struct {
	log         *slog.Logger
	store       Store
	manifest    ManifestProvider
	metadata    MetadataClient
	downloaders TokenDownloaderFactory
	credentials CredentialProvider
	publisher   Publisher
	opts        Options

	events  chan func()
	done    chan struct{}
	running atomic.Bool
	runCtx  context.Context

	state                 State
	cycle                 uint64
	cycleCtx              context.Context
	cycleCancel           context.CancelFunc
	candidates            map[string]*Update
	inflight              map[string]TokenDownloader
	retries               map[UpdateKey]TokenDownloader
	token                 SigningToken
	pendingCheck          bool
	requestingCredentials bool

	mu     sync.RWMutex
	status CheckStatus
}

func NewOrchestrator(
	log *slog.Logger,
	store Store,
	manifest ManifestProvider,
	metadata MetadataClient,
	downloaders TokenDownloaderFactory,
	credentials CredentialProvider,
	publisher Publisher,
	opts Options,
) (*Orchestrator, error) {
	if opts.MetadataURL == "" {
		return nil, fmt.Errorf("empty metadata url specified")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Orchestrator{
		log:         log,
		store:       store,
		manifest:    manifest,
		metadata:    metadata,
		downloaders: downloaders,
		credentials: credentials,
		publisher:   publisher,
		opts:        opts,
		events:      make(chan func(), eventQueueSize),
		done:        make(chan struct{}),
		runCtx:      context.Background(),
		candidates:  map[string]*Update{},
		inflight:    map[string]TokenDownloader{},
		retries:     map[UpdateKey]TokenDownloader{},
	}, nil
}

// Run processes orchestrator events until ctx is done.
func (o *Orchestrator) Run(ctx context.Context) error {
	if !o.running.CompareAndSwap(false, true) {
		return ErrAlreadyExists
	}
	defer close(o.done)

	o.runCtx = ctx
	o.log.Info("orchestrator started", "ignore_credentials", o.opts.IgnoreCredentials)

	if err := o.store.PruneDB(ctx); err != nil {
		o.log.Error("failed to prune store", "error", err)
	}
	if !o.opts.IgnoreCredentials {
		o.requestCredentials()
	}

	for {
		select {
		case fn := <-o.events:
			fn()
		case <-ctx.Done():
			o.cancel()
			o.log.Info("orchestrator stopped")
			return nil
		}
	}
}

func (o *Orchestrator) Check(ctx context.Context) error {
	return o.call(ctx, o.check)
}

func (o *Orchestrator) Cancel(ctx context.Context) error {
	return o.call(ctx, func() error {
		o.cancel()
		return nil
	})
}

// Retry reacquires the download token of one stored update outside of a
// check cycle.
func (o *Orchestrator) Retry(ctx context.Context, identifier string, revision int64) error {
	if identifier == "" || revision < 0 {
		return ErrBadArguments
	}
	return o.call(ctx, func() error {
		return o.retry(identifier, revision)
	})
}

func (o *Orchestrator) Status(_ context.Context) CheckStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

func (o *Orchestrator) Updates(ctx context.Context, kind Kind) ([]Update, error) {
	updates, err := o.store.List(ctx, kind)
	if err != nil {
		o.log.Error("failed to list updates", "error", err)
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}
	return updates, nil
}

func (o *Orchestrator) Drop(ctx context.Context) error {
	return o.call(ctx, func() error {
		if o.state != StateIdle {
			return ErrAlreadyExists
		}
		if err := o.store.Drop(o.runCtx); err != nil {
			o.log.Error("failed to drop updates", "error", err)
			return fmt.Errorf("failed to drop updates: %w", err)
		}
		return nil
	})
}

// IsCheckRequired reports whether the last successful check is older than
// the manual check throttle.
func (o *Orchestrator) IsCheckRequired(ctx context.Context) (bool, error) {
	last, err := o.store.LastCheckDate(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get last check date: %w", err)
	}
	if last.IsZero() {
		return true, nil
	}
	return o.opts.Clock().Sub(last) > checkThrottle, nil
}

func (o *Orchestrator) call(ctx context.Context, fn func() error) error {
	if !o.running.Load() {
		return ErrServiceUnavailable
	}
	reply := make(chan error, 1)
	select {
	case o.events <- func() { reply <- fn() }:
	case <-o.done:
		return ErrServiceUnavailable
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-o.done:
		return ErrServiceUnavailable
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post hands a collaborator result back to the loop. Results posted after
// Run returned are dropped.
func (o *Orchestrator) post(fn func()) {
	select {
	case o.events <- fn:
	case <-o.done:
	}
}

func (o *Orchestrator) check() error {
	if o.state != StateIdle {
		return ErrAlreadyExists
	}
	if !o.opts.IgnoreCredentials && !o.hasValidToken() {
		o.log.Info("no valid credentials, requesting them before checking")
		o.pendingCheck = true
		o.requestCredentials()
		return nil
	}
	o.setError("")
	o.setState(StateManifest)
	return nil
}

func (o *Orchestrator) cancel() {
	for _, downloader := range o.inflight {
		downloader.Cancel()
	}
	for _, downloader := range o.retries {
		downloader.Cancel()
	}
	o.metadata.Cancel()
	if o.cycleCancel != nil {
		o.cycleCancel()
	}
	o.setState(StateCanceled)
}

func (o *Orchestrator) setState(next State) {
	if !CanTransition(o.state, next) {
		o.log.Debug("ignoring state transition", "from", o.state, "to", next)
		return
	}
	o.log.Debug("state changed", "from", o.state, "to", next)
	o.state = next
	o.updateStatus(func(s *CheckStatus) {
		s.State = next
		s.Checking = next != StateIdle
	})

	switch next {
	case StateIdle:
		o.enterIdle()
	case StateManifest:
		o.enterManifest()
	case StateMetadata:
		o.enterMetadata()
	case StateTokenComplete:
		o.completionCheck()
	case StateComplete:
		o.enterComplete()
	case StateCanceled:
		o.log.Info("update check canceled")
		o.publish(EventCheckCanceled)
		o.setState(StateIdle)
	case StateFailed:
		o.log.Info("update check failed", "error", o.Status(o.runCtx).Error)
		o.publish(EventCheckFailed)
		o.setState(StateIdle)
	}
}

func (o *Orchestrator) enterIdle() {
	o.cycle++
	if o.cycleCancel != nil {
		o.cycleCancel()
		o.cycleCancel = nil
	}
	for identifier, downloader := range o.inflight {
		downloader.Cancel()
		delete(o.inflight, identifier)
	}
	clear(o.candidates)
}

func (o *Orchestrator) enterManifest() {
	clear(o.candidates)
	o.cycleCtx, o.cycleCancel = context.WithCancel(o.runCtx)
	o.log.Info("update check started")
	o.publish(EventCheckStarted)

	cycle, ctx := o.cycle, o.cycleCtx
	go func() {
		manifest, err := o.manifest.Request(ctx)
		o.post(func() { o.handleManifest(cycle, manifest, err) })
	}()
}

func (o *Orchestrator) handleManifest(cycle uint64, manifest []ManifestEntry, err error) {
	if err == nil {
		if err := Synchronize(o.runCtx, o.log, o.store, manifest, o.opts.Clock()); err != nil {
			o.log.Error("failed to synchronize store", "error", err)
		}
	}
	if cycle != o.cycle || o.state != StateManifest {
		o.log.Debug("discarding stale manifest", "cycle", cycle)
		return
	}
	if err != nil {
		// a missing manifest only means no package updates this cycle
		o.log.Warn("failed to get manifest", "error", err)
		o.setState(StateComplete)
		return
	}

	for _, entry := range manifest {
		if entry.Identifier == "" {
			continue
		}
		o.candidates[entry.Identifier] = &Update{
			Kind:         KindPackage,
			Identifier:   entry.Identifier,
			Title:        entry.Title,
			LocalVersion: entry.Version,
			Command:      entry.AppID,
			State:        UpdateUnknown,
		}
	}
	o.log.Debug("manifest received", "packages", len(o.candidates))

	if len(o.candidates) == 0 {
		o.setState(StateComplete)
		return
	}
	o.setState(StateMetadata)
}

func (o *Orchestrator) enterMetadata() {
	names := make([]string, 0, len(o.candidates))
	for name := range o.candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	url, err := o.sign(o.opts.MetadataURL, http.MethodPost)
	if err != nil {
		o.log.Error("failed to sign metadata url", "error", err)
		o.fail(err)
		return
	}

	cycle, ctx := o.cycle, o.cycleCtx
	go func() {
		packages, err := o.metadata.RequestMetadata(ctx, url, names)
		o.post(func() { o.handleMetadata(cycle, packages, err) })
	}()
}

func (o *Orchestrator) handleMetadata(cycle uint64, packages []RemotePackage, err error) {
	if cycle != o.cycle || o.state != StateMetadata {
		o.log.Debug("discarding stale metadata", "cycle", cycle)
		return
	}
	if err != nil {
		if errors.Is(err, ErrCredentials) {
			o.handleCredentialError()
		}
		o.log.Error("failed to get metadata", "error", err)
		o.fail(err)
		return
	}
	o.parseMetadata(packages)
}

func (o *Orchestrator) parseMetadata(packages []RemotePackage) {
	now := o.opts.Clock()
	seen := make(map[string]bool, len(packages))

	for _, pkg := range packages {
		if pkg.Name == "" {
			o.log.Warn("skipping metadata entry without name")
			continue
		}
		candidate, ok := o.candidates[pkg.Name]
		if !ok || seen[pkg.Name] {
			continue
		}
		seen[pkg.Name] = true

		stored, err := o.store.Get(o.runCtx, pkg.Name, pkg.Revision)
		switch {
		case err == nil && stored.Token != "" && now.Sub(stored.CreatedAt) < tokenReuseLimit:
			o.log.Debug("reusing download token", "identifier", pkg.Name, "revision", pkg.Revision)
			stored.LocalVersion = candidate.LocalVersion
			*candidate = stored
			continue
		case err == nil:
			candidate.CreatedAt = stored.CreatedAt
			candidate.Automatic = stored.Automatic
		case !errors.Is(err, ErrNotFound):
			o.log.Error("failed to get stored update", "identifier", pkg.Name, "error", err)
		}

		candidate.RemoteVersion = pkg.Version
		candidate.Revision = pkg.Revision
		candidate.IconURL = pkg.IconURL
		candidate.DownloadURL = pkg.DownloadURL
		candidate.DownloadHash = pkg.DownloadSHA512
		candidate.Changelog = pkg.Changelog
		candidate.BinarySize = pkg.BinaryFilesize
		if pkg.Title != "" {
			candidate.Title = pkg.Title
		}
		if candidate.CreatedAt.IsZero() {
			candidate.CreatedAt = now
		}

		if !candidate.IsUpdateRequired() {
			delete(o.candidates, pkg.Name)
			continue
		}
		o.startDownload(candidate)
	}

	for name := range o.candidates {
		if !seen[name] {
			delete(o.candidates, name)
		}
	}
	o.enterTokenComplete()
}

func (o *Orchestrator) startDownload(candidate *Update) {
	identifier := candidate.Identifier
	if candidate.DownloadURL == "" {
		o.log.Warn("update has no download url", "identifier", identifier)
		delete(o.candidates, identifier)
		return
	}
	signed, err := o.sign(candidate.DownloadURL, http.MethodHead)
	if err != nil {
		o.log.Warn("failed to sign download url", "identifier", identifier, "error", err)
		delete(o.candidates, identifier)
		return
	}

	downloader := o.downloaders.New(*candidate)
	o.inflight[identifier] = downloader
	o.setState(StateTokens)

	cycle, ctx := o.cycle, o.cycleCtx
	go func() {
		update, err := downloader.Download(ctx, signed)
		o.post(func() { o.handleDownload(cycle, identifier, downloader, update, err) })
	}()
}

func (o *Orchestrator) handleDownload(cycle uint64, identifier string, downloader TokenDownloader, update Update, err error) {
	if cycle != o.cycle || o.inflight[identifier] != downloader {
		o.log.Debug("discarding stale download token", "identifier", identifier)
		return
	}
	delete(o.inflight, identifier)

	candidate, ok := o.candidates[identifier]
	if !ok {
		return
	}
	if err != nil {
		if errors.Is(err, ErrCredentials) {
			o.handleCredentialError()
		}
		o.log.Warn("failed to get download token", "identifier", identifier, "error", err)
		delete(o.candidates, identifier)
	} else {
		candidate.Token = update.Token
		candidate.State = UpdateAvailable
		candidate.Error = ""
		if err := o.store.Add(o.runCtx, *candidate); err != nil {
			o.log.Error("failed to store update", "identifier", identifier, "error", err)
		}
	}
	o.enterTokenComplete()
}

func (o *Orchestrator) enterTokenComplete() {
	if o.state == StateTokenComplete {
		o.completionCheck()
		return
	}
	o.setState(StateTokenComplete)
}

// completionCheck ends the cycle once every candidate holds a token. It is
// safe to run any number of times.
func (o *Orchestrator) completionCheck() {
	for _, candidate := range o.candidates {
		if candidate.Token == "" {
			return
		}
	}
	o.setState(StateComplete)
}

func (o *Orchestrator) enterComplete() {
	if err := o.store.SetLastCheckDate(o.runCtx, o.opts.Clock()); err != nil {
		o.log.Error("failed to set last check date", "error", err)
	}
	o.log.Info("update check completed", "updates", len(o.candidates))
	o.publish(EventCheckCompleted)
	o.setState(StateIdle)
}

func (o *Orchestrator) fail(err error) {
	o.setError(err.Error())
	o.setState(StateFailed)
}

func (o *Orchestrator) retry(identifier string, revision int64) error {
	update, err := o.store.Get(o.runCtx, identifier, revision)
	if err != nil {
		return fmt.Errorf("failed to get update %s: %w", identifier, err)
	}
	key := update.Key()
	if _, busy := o.retries[key]; busy {
		return ErrAlreadyExists
	}

	signed, err := o.sign(update.DownloadURL, http.MethodHead)
	if err != nil {
		update.State = UpdateFailed
		update.Error = invalidCredentialsMessage
		if err := o.store.Add(o.runCtx, update); err != nil {
			o.log.Error("failed to store update", "identifier", identifier, "error", err)
		}
		return ErrInvalidCredentials
	}

	o.log.Info("retrying download token", "identifier", identifier, "revision", revision)
	downloader := o.downloaders.New(update)
	o.retries[key] = downloader
	ctx := o.runCtx
	go func() {
		result, err := downloader.Download(ctx, signed)
		o.post(func() { o.handleRetry(key, downloader, result, err) })
	}()
	return nil
}

func (o *Orchestrator) handleRetry(key UpdateKey, downloader TokenDownloader, result Update, downloadErr error) {
	if o.retries[key] != downloader {
		return
	}
	delete(o.retries, key)

	if errors.Is(downloadErr, context.Canceled) {
		o.log.Debug("retry canceled", "identifier", key.Identifier)
		return
	}
	update, err := o.store.Get(o.runCtx, key.Identifier, key.Revision)
	if err != nil {
		o.log.Warn("retried update is gone", "identifier", key.Identifier, "error", err)
		return
	}
	if downloadErr != nil {
		if errors.Is(downloadErr, ErrCredentials) {
			o.handleCredentialError()
		}
		o.log.Warn("retry failed", "identifier", key.Identifier, "error", downloadErr)
		update.State = UpdateFailed
		update.Error = downloadErr.Error()
	} else {
		update.Token = result.Token
		update.State = UpdateAvailable
		update.Error = ""
	}
	if err := o.store.Add(o.runCtx, update); err != nil {
		o.log.Error("failed to store update", "identifier", key.Identifier, "error", err)
	}
}

func (o *Orchestrator) sign(rawURL, method string) (string, error) {
	if o.hasValidToken() {
		return o.token.SignURL(rawURL, method)
	}
	if o.opts.IgnoreCredentials {
		return rawURL, nil
	}
	return "", ErrInvalidCredentials
}

func (o *Orchestrator) hasValidToken() bool {
	return o.token != nil && o.token.IsValid()
}

func (o *Orchestrator) requestCredentials() {
	if o.requestingCredentials {
		return
	}
	o.requestingCredentials = true
	ctx := o.runCtx
	go func() {
		token, err := o.credentials.RequestCredentials(ctx)
		o.post(func() { o.handleCredentials(token, err) })
	}()
}

func (o *Orchestrator) handleCredentials(token SigningToken, err error) {
	o.requestingCredentials = false
	if err == nil && (token == nil || !token.IsValid()) {
		err = ErrCredentialsNotFound
	}
	if err != nil {
		if errors.Is(err, ErrCredentialsNotFound) || errors.Is(err, ErrCredentialsDeleted) {
			o.log.Info("no usable credentials", "reason", err)
		} else {
			o.log.Error("failed to get credentials", "error", err)
		}
		o.token = nil
		o.pendingCheck = false
		o.setAuthenticated(false)
		if o.state != StateIdle {
			o.cancel()
		}
		return
	}

	o.token = token
	o.setAuthenticated(true)
	if o.pendingCheck {
		o.pendingCheck = false
		if err := o.check(); err != nil {
			o.log.Debug("pending check not started", "error", err)
		}
	}
}

func (o *Orchestrator) handleCredentialError() {
	o.log.Warn("credentials rejected by server")
	o.token = nil
	o.setAuthenticated(false)
	o.publish(EventCredentialError)

	ctx := o.runCtx
	go func() {
		if err := o.credentials.InvalidateCredentials(ctx); err != nil {
			o.log.Error("failed to invalidate credentials", "error", err)
		}
	}()
}

func (o *Orchestrator) setAuthenticated(authenticated bool) {
	if o.Status(o.runCtx).Authenticated == authenticated {
		return
	}
	o.updateStatus(func(s *CheckStatus) { s.Authenticated = authenticated })
	if authenticated {
		o.publish(EventAuthenticated)
	} else {
		o.publish(EventDeauthenticated)
	}
}

func (o *Orchestrator) setError(msg string) {
	o.updateStatus(func(s *CheckStatus) { s.Error = msg })
}

func (o *Orchestrator) updateStatus(fn func(*CheckStatus)) {
	o.mu.Lock()
	fn(&o.status)
	o.mu.Unlock()
}

func (o *Orchestrator) publish(event EventType) {
	if err := o.publisher.Publish(event); err != nil {
		o.log.Error("failed to publish", "event", event, "error", err)
	}
}
