package main

import (
	"context"
	"fmt"

	"classsync/internal/workspace"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show active assignments with how soon they are due",
	GroupID: "tasks",
	Args:    cobra.NoArgs,
	RunE:    withSession(runList),
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show assignments you have completed",
	GroupID: "tasks",
	Args:    cobra.NoArgs,
	RunE:    withSession(runHistory),
}

var pendingCmd = &cobra.Command{
	Use:     "pending",
	Short:   "Show suggestions waiting for review (admin)",
	GroupID: "admin",
	Args:    cobra.NoArgs,
	RunE:    withSession(runPending),
}

var classesCmd = &cobra.Command{
	Use:     "classes",
	Short:   "Show classes and which ones you are enrolled in",
	GroupID: "classes",
	Args:    cobra.NoArgs,
	RunE:    withSession(runClasses),
}

func init() {
	rootCmd.AddCommand(listCmd, historyCmd, pendingCmd, classesCmd)
}

func runList(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
	out := cmd.OutOrStdout()
	d := a.ws.Dashboard(a.now())
	t := a.theme()

	fmt.Fprintln(out, t.Title().Render("Active"))
	if len(d.Active) == 0 {
		fmt.Fprintln(out, t.Muted().Render("Nothing due. Enjoy!"))
	}
	printAssignments(out, t, d, d.Active)
	if d.Profile.IsAdmin && d.PendingCount() > 0 {
		fmt.Fprintln(out, t.Muted().Render(fmt.Sprintf("%d suggestions waiting for review, see `classsync pending`.", d.PendingCount())))
	}
	return a.ws.SetView("dashboard")
}

func runHistory(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
	out := cmd.OutOrStdout()
	d := a.ws.Dashboard(a.now())
	t := a.theme()

	fmt.Fprintln(out, t.Title().Render("Completed"))
	if len(d.Completed) == 0 {
		fmt.Fprintln(out, t.Muted().Render("Nothing completed yet."))
	}
	printAssignments(out, t, d, d.Completed)
	return a.ws.SetView("history")
}

func runPending(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
	d := a.ws.Dashboard(a.now())
	if !d.Profile.IsAdmin {
		return workspace.ErrForbidden
	}
	out := cmd.OutOrStdout()
	t := a.theme()

	fmt.Fprintln(out, t.Title().Render("Assignments to review"))
	if len(d.PendingModeration) == 0 {
		fmt.Fprintln(out, t.Muted().Render("None."))
	}
	printAssignments(out, t, d, d.PendingModeration)

	fmt.Fprintln(out, t.Title().Render("Classes to review"))
	if len(d.PendingClasses) == 0 {
		fmt.Fprintln(out, t.Muted().Render("None."))
	}
	for _, c := range d.PendingClasses {
		printClass(out, t, c, false)
	}
	return a.ws.SetView("admin")
}

func runClasses(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
	out := cmd.OutOrStdout()
	d := a.ws.Dashboard(a.now())
	t := a.theme()

	if len(d.ApprovedClasses) == 0 {
		fmt.Fprintln(out, t.Muted().Render("No classes yet. Suggest one with `classsync suggest-class`."))
	}
	for _, c := range d.ApprovedClasses {
		printClass(out, t, c, d.Profile.IsEnrolled(c.ID))
	}
	for _, c := range d.PendingClasses {
		printClass(out, t, c, false)
	}
	return a.ws.SetView("classes")
}
