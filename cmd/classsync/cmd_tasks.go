package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classsync/internal/errdefs"
	"classsync/internal/model"
	"classsync/internal/placement"

	"github.com/spf13/cobra"
)

var (
	flagDue     string
	flagAt      string
	flagClass   string
	flagDevice  bool
	flagTeacher string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a personal task",
	Long: `Add a personal task that only you can see.

With --device the task is kept on this device and never sent to the server.`,
	GroupID: "tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE:    withSession(runAdd),
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Delete one of your personal tasks",
	GroupID: "tasks",
	Args:    cobra.ExactArgs(1),
	RunE:    withSession(runRemove),
}

var suggestCmd = &cobra.Command{
	Use:     "suggest <title>",
	Short:   "Suggest an assignment for a class",
	GroupID: "tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE:    withSession(runSuggest),
}

var doneCmd = &cobra.Command{
	Use:     "done <id>",
	Short:   "Mark an assignment as completed",
	GroupID: "tasks",
	Args:    cobra.ExactArgs(1),
	RunE:    withSession(runDone),
}

var reopenCmd = &cobra.Command{
	Use:     "reopen <id>",
	Short:   "Move a completed assignment back to active",
	GroupID: "tasks",
	Args:    cobra.ExactArgs(1),
	RunE:    withSession(runReopen),
}

var undoCmd = &cobra.Command{
	Use:     "undo",
	Short:   "Undo the last completion while the undo window is open",
	GroupID: "tasks",
	Args:    cobra.NoArgs,
	RunE:    withSession(runUndo),
}

var noteCmd = &cobra.Command{
	Use:     "note <id> [text]",
	Short:   "Set your private note on an assignment (no text clears it)",
	GroupID: "tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE:    withSession(runNote),
}

var linkCmd = &cobra.Command{
	Use:     "link <id> [url]",
	Short:   "Set your private link on an assignment (no url clears it)",
	GroupID: "tasks",
	Args:    cobra.RangeArgs(1, 2),
	RunE:    withSession(runLink),
}

var enrollCmd = &cobra.Command{
	Use:     "enroll <class>",
	Short:   "Join or leave a class",
	GroupID: "classes",
	Args:    cobra.ExactArgs(1),
	RunE:    withSession(runEnroll),
}

var suggestClassCmd = &cobra.Command{
	Use:     "suggest-class <name>",
	Short:   "Suggest a new class",
	GroupID: "classes",
	Args:    cobra.MinimumNArgs(1),
	RunE:    withSession(runSuggestClass),
}

func init() {
	for _, c := range []*cobra.Command{addCmd, suggestCmd} {
		c.Flags().StringVar(&flagDue, "due", "", "due date: YYYY-MM-DD, today or tomorrow")
		c.Flags().StringVar(&flagAt, "at", "", "due time: HH:MM (needs --due)")
	}
	addCmd.Flags().BoolVar(&flagDevice, "device", false, "keep the task on this device only")
	suggestCmd.Flags().StringVarP(&flagClass, "class", "c", "", "class name or id")
	_ = suggestCmd.MarkFlagRequired("class")
	suggestClassCmd.Flags().StringVarP(&flagTeacher, "teacher", "t", "", "teacher's name")

	rootCmd.AddCommand(addCmd, rmCmd, suggestCmd, doneCmd, reopenCmd, undoCmd, noteCmd, linkCmd, enrollCmd, suggestClassCmd)
}

// parseDue reads the --due and --at flags relative to now.
func parseDue(due, at string, now time.Time) (*model.Date, *model.TimeOfDay, error) {
	var date *model.Date
	switch strings.ToLower(strings.TrimSpace(due)) {
	case "":
	case "today":
		d := model.DateOf(now)
		date = &d
	case "tomorrow":
		d := model.DateOf(now.AddDate(0, 0, 1))
		date = &d
	default:
		d, err := model.ParseDate(due)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: --due %q, want YYYY-MM-DD", errdefs.ErrValidation, due)
		}
		date = &d
	}

	if at == "" {
		return date, nil, nil
	}
	if date == nil {
		return nil, nil, fmt.Errorf("%w: --at needs --due", errdefs.ErrValidation)
	}
	tod, err := model.ParseTimeOfDay(at)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: --at %q, want HH:MM", errdefs.ErrValidation, at)
	}
	return date, &tod, nil
}

func runAdd(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	due, at, err := parseDue(flagDue, flagAt, a.now())
	if err != nil {
		return err
	}
	task, err := a.ws.AddPersonalTask(ctx, placement.NewTask{
		Title:        strings.Join(args, " "),
		DueDate:      due,
		DueTime:      at,
		KeepOnDevice: flagDevice,
	})
	if err != nil {
		return err
	}
	where := "saved to your account"
	if task.Storage == model.StorageDevice {
		where = "kept on this device"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s), %s.\n", task.Title, task.ID.String()[:8], where)
	return nil
}

func runRemove(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	task, err := a.ws.Find(args[0])
	if err != nil {
		return err
	}
	if !task.IsPersonal {
		return fmt.Errorf("%w: %q is a class assignment, not a personal task", errdefs.ErrValidation, task.Title)
	}
	if err := a.ws.DeletePersonalTask(ctx, task.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", task.Title)
	return nil
}

func runSuggest(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	class, err := a.ws.FindClass(flagClass)
	if err != nil {
		return err
	}
	due, at, err := parseDue(flagDue, flagAt, a.now())
	if err != nil {
		return err
	}
	created, err := a.ws.SuggestAssignment(ctx, strings.Join(args, " "), class.ID, due, at)
	if err != nil {
		return err
	}
	if created.Status == model.StatusPending {
		fmt.Fprintf(cmd.OutOrStdout(), "Suggested %q for %s. It will appear once an admin approves it.\n", created.Title, class.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Published %q for %s.\n", created.Title, class.Name)
	}
	return nil
}

func setState(ctx context.Context, a *app, ref string, update model.StateUpdate) (*model.Assignment, model.PersonalState, error) {
	target, err := a.ws.Find(ref)
	if err != nil {
		return nil, model.PersonalState{}, err
	}
	state, err := a.ws.UpdatePersonalState(ctx, target.ID, update)
	return target, state, err
}

func runDone(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	completed := true
	target, _, err := setState(ctx, a, args[0], model.StateUpdate{Completed: &completed})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Completed %q. Run `classsync undo` within %s to take it back.\n", target.Title, a.cfg.UndoWindow)
	return nil
}

func runReopen(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	completed := false
	target, _, err := setState(ctx, a, args[0], model.StateUpdate{Completed: &completed})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reopened %q.\n", target.Title)
	return nil
}

func runUndo(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	ok, err := a.ws.Undo(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Undone.")
	return nil
}

func runNote(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	note := strings.Join(args[1:], " ")
	target, _, err := setState(ctx, a, args[0], model.StateUpdate{Note: &note})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved note on %q.\n", target.Title)
	return nil
}

func runLink(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	link := ""
	if len(args) == 2 {
		link = strings.TrimSpace(args[1])
	}
	target, _, err := setState(ctx, a, args[0], model.StateUpdate{Link: &link})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved link on %q.\n", target.Title)
	return nil
}

func runEnroll(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	class, err := a.ws.FindClass(args[0])
	if err != nil {
		return err
	}
	enrolled, err := a.ws.ToggleEnrollment(ctx, class.ID)
	if err != nil {
		return err
	}
	if enrolled {
		fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in %s.\n", class.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Left %s.\n", class.Name)
	}
	return nil
}

func runSuggestClass(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	class, err := a.ws.SuggestClass(ctx, strings.Join(args, " "), flagTeacher)
	if err != nil {
		return err
	}
	if class.Status == model.StatusPending {
		fmt.Fprintf(cmd.OutOrStdout(), "Suggested %s. It will appear once an admin approves it.\n", class.Name)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s.\n", class.Name)
	}
	return nil
}
