package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"classsync/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	flagPassword string
	flagName     string
)

var signinCmd = &cobra.Command{
	Use:     "signin <email>",
	Short:   "Sign in and remember the session on this device",
	GroupID: "session",
	Args:    cobra.ExactArgs(1),
	RunE:    withApp(runSignin),
}

var signupCmd = &cobra.Command{
	Use:     "signup <email>",
	Short:   "Create an account",
	GroupID: "session",
	Args:    cobra.ExactArgs(1),
	RunE:    withApp(runSignup),
}

var signoutCmd = &cobra.Command{
	Use:     "signout",
	Short:   "Forget the session stored on this device",
	GroupID: "session",
	Args:    cobra.NoArgs,
	RunE:    withApp(runSignout),
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show who is signed in and what needs attention",
	GroupID: "session",
	Args:    cobra.NoArgs,
	RunE:    withApp(runStatus),
}

func init() {
	for _, c := range []*cobra.Command{signinCmd, signupCmd} {
		c.Flags().StringVarP(&flagPassword, "password", "p", "", "password (read from stdin when omitted)")
	}
	signupCmd.Flags().StringVarP(&flagName, "name", "n", "", "full name shown to classmates")
	_ = signupCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(signinCmd, signupCmd, signoutCmd, statusCmd)
}

func readPassword(cmd *cobra.Command) (string, error) {
	if flagPassword != "" {
		return flagPassword, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runSignin(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	if err := a.ws.SignIn(ctx, args[0], password); err != nil {
		return err
	}
	return printWelcome(cmd, a)
}

func runSignup(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	if err := a.ws.SignUp(ctx, args[0], password, flagName); err != nil {
		return err
	}
	return printWelcome(cmd, a)
}

func printWelcome(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	if a.ws.State() == workspace.StateBanned {
		fmt.Fprintln(out, "Signed in, but this account has been banned by an administrator.")
		return nil
	}
	p := a.ws.Profile()
	fmt.Fprintf(out, "Signed in as %s.\n", p.FullName)
	if len(p.EnrolledClasses) == 0 {
		fmt.Fprintln(out, "You are not enrolled in any class yet. See `classsync classes` and `classsync enroll`.")
	}
	return nil
}

func runSignout(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	if err := a.ws.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}

func runStatus(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
	out := cmd.OutOrStdout()
	t := a.theme()

	switch a.ws.State() {
	case workspace.StateAuth:
		fmt.Fprintf(out, "Server: %s\nNot signed in.\n", a.cfg.ServerURL)
		return nil
	case workspace.StateBanned:
		fmt.Fprintln(out, "This account has been banned by an administrator.")
		return nil
	}

	d := a.ws.Dashboard(a.now())
	role := "student"
	if d.Profile.IsAdmin {
		role = "admin"
	}
	fmt.Fprintln(out, t.Title().Render(fmt.Sprintf("%s (%s)", d.Profile.FullName, role)))
	fmt.Fprintf(out, "Server:      %s\n", a.cfg.ServerURL)
	fmt.Fprintf(out, "Enrolled in: %d classes\n", len(d.Profile.EnrolledClasses))
	fmt.Fprintf(out, "Active:      %d\n", len(d.Active))
	fmt.Fprintf(out, "Completed:   %d\n", len(d.Completed))
	if d.Profile.IsAdmin {
		fmt.Fprintf(out, "To review:   %d\n", d.PendingCount())
		fmt.Fprintf(out, "Moderation:  %s\n", onOff(d.Settings.ModerationEnabled))
	}
	if d.UndoPending {
		fmt.Fprintln(out, t.Muted().Render("A completion can still be undone with `classsync undo`."))
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
