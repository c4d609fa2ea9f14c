package commands

import (
	"click-updater/updatectl/core"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the update check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.updater.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return printJSON(out, status)
			}
			fmt.Fprintf(out, "state:          %s\n", status.State)
			fmt.Fprintf(out, "checking:       %t\n", status.Checking)
			fmt.Fprintf(out, "authenticated:  %t\n", status.Authenticated)
			fmt.Fprintf(out, "check required: %t\n", status.CheckRequired)
			if status.Error != "" {
				color.New(color.FgRed).Fprintf(out, "error:          %s\n", status.Error)
			}
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch core.Kind(kind) {
			case "", core.KindPackage, core.KindImage:
			default:
				return fmt.Errorf("unknown kind %q: %w", kind, core.ErrBadArguments)
			}
			result, err := a.updater.Updates(cmd.Context(), core.Kind(kind))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return printJSON(out, result)
			}
			if result.Total == 0 {
				fmt.Fprintln(out, "no updates")
				return nil
			}
			rows := make([][]string, 0, len(result.Updates))
			for _, u := range result.Updates {
				rows = append(rows, []string{
					u.Identifier,
					strconv.FormatInt(u.Revision, 10),
					u.LocalVersion,
					u.RemoteVersion,
					u.State,
					u.Error,
				})
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "REVISION", "INSTALLED", "AVAILABLE", "STATE", "ERROR").
				Rows(rows...)
			fmt.Fprintln(out, t.Render())
			fmt.Fprintf(out, "%d update(s)\n", result.Total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list updates of this kind (package, image)")
	return cmd
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Start an update check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			switch err := a.updater.Check(ctx); {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "check started")
			case errors.Is(err, core.ErrAlreadyExists):
				fmt.Fprintln(cmd.OutOrStdout(), "check already running")
			default:
				return err
			}
			return nil
		},
	}
}

func newCancelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the running update check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.updater.Cancel(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "check canceled")
			return nil
		},
	}
}

func newRetryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "retry ID REVISION",
		Short: "Fetch a fresh download token for one update",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			revision, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || revision < 0 {
				return fmt.Errorf("bad revision %q: %w", args[1], core.ErrBadArguments)
			}
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.updater.Retry(ctx, args[0], revision); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "retrying %s revision %d\n", args[0], revision)
			return nil
		},
	}
}

func newDropCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Remove every stored update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.updater.Drop(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "store dropped")
			return nil
		},
	}
}

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print updater events as they are published",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return a.events.Watch(cmd.Context(), func(event core.Event) {
				if a.jsonOutput {
					if err := printJSON(out, event); err != nil {
						a.log.Warn("failed to print event", "error", err)
					}
					return
				}
				at := event.At
				if at.IsZero() {
					at = time.Now()
				}
				eventColor(event.Type).Fprintf(out, "%s %s\n", at.Local().Format(time.DateTime), event.Type)
			})
		},
	}
}

func eventColor(event core.EventType) *color.Color {
	switch event {
	case "check_failed", "credential_error", "deauthenticated":
		return color.New(color.FgRed)
	case "check_completed", "authenticated":
		return color.New(color.FgGreen)
	case "check_canceled":
		return color.New(color.FgYellow)
	default:
		return color.New(color.Reset)
	}
}
