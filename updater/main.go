package main

import (
	"click-updater/updater/adapters/db"
	"click-updater/updater/adapters/httpclient"
	"click-updater/updater/adapters/manifest"
	"click-updater/updater/adapters/metadata"
	"click-updater/updater/adapters/platform"
	"click-updater/updater/adapters/publisher"
	"click-updater/updater/adapters/rest"
	"click-updater/updater/adapters/rest/middleware"
	"click-updater/updater/adapters/scheduler"
	"click-updater/updater/adapters/sso"
	"click-updater/updater/config"
	"click-updater/updater/core"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	charm "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "updater configuration file")
	flag.Parse()

	// optional, the environment may already be complete
	_ = godotenv.Load()

	var cfg config.Config
	config.MustLoad(configPath, &cfg)

	log := mustMakeLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("updater failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting click updater")
	log.Debug("debug messages are enabled")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Platform
	device, err := platform.Detect(ctx, log, cfg.Platform.Architecture, cfg.Platform.FrameworksDir)
	if err != nil {
		return fmt.Errorf("cannot detect platform: %w", err)
	}

	// Events
	var events core.Publisher
	if cfg.Broker.Address != "" {
		nats, err := publisher.NewNatsPublisher(cfg.Broker.Address, cfg.Broker.Subject, log)
		if err != nil {
			return fmt.Errorf("cannot init publisher: %w", err)
		}
		defer nats.Close()
		events = nats
	} else {
		log.Warn("no broker configured, events are only logged")
		events = publisher.NewLogPublisher(log)
	}

	// Store
	storage, err := db.New(log, cfg.DBAddress, events)
	if err != nil {
		return fmt.Errorf("cannot init store: %w", err)
	}
	defer storage.Close()
	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("cannot migrate store: %w", err)
	}

	// Collaborators
	credentials, err := sso.NewProvider(log, cfg.SSO.CredentialsFile, cfg.SSO.SignatureTTL)
	if err != nil {
		return fmt.Errorf("cannot init credentials provider: %w", err)
	}
	packages, err := manifest.New(log, cfg.Manifest.Command, cfg.Manifest.Timeout)
	if err != nil {
		return fmt.Errorf("cannot init manifest provider: %w", err)
	}
	httpClient := &http.Client{Timeout: cfg.Store.Timeout}
	tokenLimiter := rate.NewLimiter(rate.Limit(cfg.Store.TokenRate), 1)
	metadataClient := metadata.NewClient(log, httpclient.New(log, httpClient, device, nil))
	downloaders := metadata.NewFactory(log, httpClient, device, tokenLimiter)

	orchestrator, err := core.NewOrchestrator(
		log,
		storage,
		packages,
		metadataClient,
		downloaders,
		credentials,
		events,
		core.Options{
			MetadataURL:       cfg.Store.MetadataURL,
			IgnoreCredentials: cfg.IgnoreCredentials,
		},
	)
	if err != nil {
		return fmt.Errorf("cannot init orchestrator: %w", err)
	}

	orchestratorDone := make(chan error, 1)
	go func() {
		orchestratorDone <- orchestrator.Run(ctx)
	}()

	if cfg.Check.Auto {
		scheduler.NewCheckScheduler(log, orchestrator, cfg.Check.Period).Start(ctx)
	}

	// Control API
	apiRateLimiter := middleware.NewRateLimiter(cfg.ApiConfig.Rate)
	cycleLimiter := middleware.NewConcurrencyLimiter(log, cfg.ApiConfig.Concurrency, cfg.ApiConfig.RetryAfter)
	jwtAth, err := middleware.NewJwtAuthenticator(cfg.Auth.AdminUser, cfg.Auth.AdminPassword, cfg.Auth.JwtSecret, cfg.Auth.TokenTtl)
	if err != nil {
		return fmt.Errorf("cannot init jwt authenticator: %w", err)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /api/ping", rest.NewPingHandler(log))
	mux.Handle("POST /api/login", rest.NewLoginHandler(log, jwtAth))
	mux.Handle("GET /api/status", rest.NewStatusHandler(log, orchestrator))
	mux.Handle("GET /api/updates", rest.NewUpdatesHandler(log, orchestrator))

	// requires JWT
	mux.Handle("POST /api/check", jwtAth.CheckToken(cycleLimiter.Limit(rest.NewCheckHandler(log, orchestrator))))
	mux.Handle("POST /api/cancel", jwtAth.CheckToken(rest.NewCancelHandler(log, orchestrator)))
	mux.Handle("POST /api/updates/{id}/{revision}/retry", jwtAth.CheckToken(cycleLimiter.Limit(rest.NewRetryHandler(log, orchestrator))))
	mux.Handle("DELETE /api/updates", jwtAth.CheckToken(cycleLimiter.Limit(rest.NewDropHandler(log, orchestrator))))

	handler := apiRateLimiter.Limit(mux)
	handler = middleware.Logging(handler, log)
	handler = middleware.Recover(log)(handler)

	server := http.Server{
		Addr:        cfg.ApiConfig.Address,
		ReadTimeout: cfg.ApiConfig.Timeout,
		Handler:     handler,
	}

	go func() {
		<-ctx.Done()
		log.Debug("shutting down control api...")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxTimeout); err != nil {
			log.Error("erroneous shutdown", "error", err)
			return
		}
		log.Debug("control api stopped gracefully")
	}()

	log.Info("running control api", "address", cfg.ApiConfig.Address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-orchestratorDone
		return fmt.Errorf("server closed unexpectedly: %w", err)
	}
	return <-orchestratorDone
}

func mustMakeLogger(logLevel, logFormat string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		panic("unknown log level: " + logLevel)
	}

	var handler slog.Handler
	switch logFormat {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	case "pretty":
		handler = charm.NewWithOptions(os.Stderr, charm.Options{
			ReportTimestamp: true,
			ReportCaller:    true,
			TimeFormat:      time.DateTime,
			Level:           charm.Level(level),
		})
	default:
		panic("unknown log format: " + logFormat)
	}
	return slog.New(handler)
}
