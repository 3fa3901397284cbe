package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"classsync/internal/errdefs"
	"classsync/internal/model"
	"classsync/internal/workspace"

	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:     "approve <id|class>",
	Short:   "Publish a suggested assignment or class",
	GroupID: "admin",
	Args:    cobra.ExactArgs(1),
	RunE:    withSession(moderate(model.StatusApproved)),
}

var rejectCmd = &cobra.Command{
	Use:     "reject <id|class>",
	Short:   "Delete an assignment or class",
	GroupID: "admin",
	Args:    cobra.ExactArgs(1),
	RunE:    withSession(moderate(model.StatusDeleted)),
}

var banCmd = &cobra.Command{
	Use:     "ban <user>",
	Short:   "Ban or unban a user by name or id",
	GroupID: "admin",
	Args:    cobra.MinimumNArgs(1),
	RunE:    withSession(runBan),
}

var moderationCmd = &cobra.Command{
	Use:     "moderation",
	Short:   "Turn review of student suggestions on or off",
	GroupID: "admin",
	Args:    cobra.NoArgs,
	RunE:    withSession(runModeration),
}

func init() {
	rootCmd.AddCommand(approveCmd, rejectCmd, banCmd, moderationCmd)
}

// moderate resolves ref to an assignment first and to a class second.
func moderate(status model.ModerationStatus) runFunc {
	return func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		verb := "Approved"
		if status == model.StatusDeleted {
			verb = "Deleted"
		}

		target, err := a.ws.Find(args[0])
		if err == nil {
			if target.IsPersonal {
				return fmt.Errorf("%w: personal tasks are not moderated", errdefs.ErrValidation)
			}
			if err := a.ws.SetAssignmentStatus(ctx, target.ID, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q.\n", verb, target.Title)
			return nil
		}
		if !errors.Is(err, errdefs.ErrNotFound) {
			return err
		}

		class, err := a.ws.FindClass(args[0])
		if err != nil {
			return err
		}
		if err := a.ws.SetClassStatus(ctx, class.ID, status); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s class %s.\n", verb, class.Name)
		return nil
	}
}

func runBan(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	ref := strings.Join(args, " ")
	d := a.ws.Dashboard(a.now())
	if !d.Profile.IsAdmin {
		return workspace.ErrForbidden
	}

	var match *model.Profile
	for i := range d.Profiles {
		p := &d.Profiles[i]
		if p.ID.String() == ref || strings.EqualFold(p.FullName, ref) {
			match = p
			break
		}
		if strings.HasPrefix(p.ID.String(), ref) {
			if match != nil {
				return fmt.Errorf("%w: %q is ambiguous", errdefs.ErrValidation, ref)
			}
			match = p
		}
	}
	if match == nil {
		return fmt.Errorf("%w: user %q", errdefs.ErrNotFound, ref)
	}

	banned, err := a.ws.ToggleBan(ctx, match.ID)
	if err != nil {
		return err
	}
	if banned {
		fmt.Fprintf(cmd.OutOrStdout(), "Banned %s.\n", match.FullName)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Unbanned %s.\n", match.FullName)
	}
	return nil
}

func runModeration(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	enabled, err := a.ws.ToggleModeration(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moderation is now %s.\n", onOff(enabled))
	return nil
}

