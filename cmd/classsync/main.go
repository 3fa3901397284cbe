// Command classsync is the terminal client for a ClassSync server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"classsync/internal/errdefs"
	"classsync/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "classsync",
	Short: "Shared class assignments and personal tasks from the terminal",
	Long: `classsync keeps a class's assignments in one place.

Everyone sees the approved assignments of the classes they are enrolled in,
marks them done privately and keeps private notes and links. Personal tasks
can live on the server or only on this device.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: CLASSSYNC_CONFIG, ./classsync.yaml, user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddGroup(
		&cobra.Group{ID: "session", Title: "Session:"},
		&cobra.Group{ID: "tasks", Title: "Assignments and tasks:"},
		&cobra.Group{ID: "classes", Title: "Classes:"},
		&cobra.Group{ID: "admin", Title: "Administration:"},
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

// describe turns the common failure kinds into something a user can act on.
func describe(err error) string {
	switch {
	case errors.Is(err, workspace.ErrNotConfigured):
		return "no server configured; set server_url in classsync.yaml or CLASSSYNC_SERVER_URL"
	case errors.Is(err, workspace.ErrNotSignedIn):
		return "not signed in; run `classsync signin <email>`"
	case errors.Is(err, workspace.ErrBanned), errors.Is(err, errdefs.ErrBanned):
		return "this account has been banned by an administrator"
	case errors.Is(err, workspace.ErrForbidden), errors.Is(err, errdefs.ErrPermissionDenied):
		return "only administrators can do that"
	case errors.Is(err, errdefs.ErrUnavailable):
		return "cannot reach the server: " + err.Error()
	}
	return err.Error()
}
