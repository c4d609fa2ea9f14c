package commands

import (
	"click-updater/updatectl/config"
	"click-updater/updatectl/core"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Connector builds the adapters once the configuration is known.
type Connector func(cfg config.Config, log *slog.Logger) (core.Updater, core.EventSource)

type app struct {
	configPath string
	address    string
	broker     string
	user       string
	password   string
	jsonOutput bool

	cfg     config.Config
	log     *slog.Logger
	updater core.Updater
	events  core.EventSource
}

func NewRootCommand(connect Connector) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "updatectl",
		Short:         "Control the click update checker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(a.configPath, &a.cfg); err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("address") {
				a.cfg.ApiConfig.Address = a.address
			}
			if flags.Changed("broker") {
				a.cfg.Broker.Address = a.broker
			}
			if flags.Changed("user") {
				a.cfg.Auth.AdminUser = a.user
			}
			if flags.Changed("password") {
				a.cfg.Auth.AdminPassword = a.password
			}
			log, err := makeLogger(a.cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			a.updater, a.events = connect(a.cfg, log)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "updatectl.yaml", "client configuration file")
	pf.StringVar(&a.address, "address", "", "updater control api address")
	pf.StringVar(&a.broker, "broker", "", "event broker address")
	pf.StringVarP(&a.user, "user", "u", "", "admin user")
	pf.StringVarP(&a.password, "password", "p", "", "admin password")
	pf.BoolVar(&a.jsonOutput, "json", false, "print replies as json")

	root.AddCommand(
		newStatusCommand(a),
		newListCommand(a),
		newCheckCommand(a),
		newCancelCommand(a),
		newRetryCommand(a),
		newDropCommand(a),
		newWatchCommand(a),
	)
	return root
}

// authorized logs in and returns a context carrying the session token.
func (a *app) authorized(ctx context.Context) (context.Context, error) {
	token, err := a.updater.Login(ctx, a.cfg.Auth.AdminUser, a.cfg.Auth.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return context.WithValue(ctx, core.JwtTokenContextKey, token), nil
}

func printJSON(w io.Writer, reply any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reply); err != nil {
		return fmt.Errorf("could not encode reply: %w", err)
	}
	return nil
}

func makeLogger(logLevel string, w io.Writer) (*slog.Logger, error) {
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
		return nil, fmt.Errorf("unknown log level: %s", logLevel)
	}
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
