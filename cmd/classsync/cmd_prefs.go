package main

import (
	"context"
	"fmt"
	"strings"

	"classsync/internal/errdefs"
	"classsync/internal/theme"

	"github.com/spf13/cobra"
)

var (
	flagDark       string
	flagAccent     string
	flagClassColor []string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change display preferences on this device",
	Long: `Show or change display preferences stored on this device.

  classsync prefs --dark on
  classsync prefs --accent purple
  classsync prefs --class-color Math=green --class-color Physics=`,
	GroupID: "session",
	Args:    cobra.NoArgs,
	RunE:    withApp(runPrefs),
}

func init() {
	prefsCmd.Flags().StringVar(&flagDark, "dark", "", "dark mode: on or off")
	prefsCmd.Flags().StringVar(&flagAccent, "accent", "", "accent color: "+strings.Join(theme.Names(), ", "))
	prefsCmd.Flags().StringArrayVar(&flagClassColor, "class-color", nil, "class=color; an empty color resets it")
	rootCmd.AddCommand(prefsCmd)
}

func runPrefs(_ context.Context, cmd *cobra.Command, a *app, _ []string) error {
	changed := false

	if flagDark != "" {
		var on bool
		switch strings.ToLower(flagDark) {
		case "on", "true", "yes":
			on = true
		case "off", "false", "no":
		default:
			return fmt.Errorf("%w: --dark must be on or off", errdefs.ErrValidation)
		}
		if err := a.ws.SetDarkMode(on); err != nil {
			return err
		}
		changed = true
	}

	if flagAccent != "" {
		if _, ok := theme.Lookup(flagAccent); !ok {
			return fmt.Errorf("%w: unknown accent %q", errdefs.ErrValidation, flagAccent)
		}
		if err := a.ws.SetAccent(flagAccent); err != nil {
			return err
		}
		changed = true
	}

	for _, kv := range flagClassColor {
		ref, color, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: --class-color wants class=color", errdefs.ErrValidation)
		}
		if color != "" {
			if _, ok := theme.Lookup(color); !ok {
				return fmt.Errorf("%w: unknown color %q", errdefs.ErrValidation, color)
			}
		}
		class, err := a.ws.FindClass(ref)
		if err != nil {
			return err
		}
		if err := a.ws.SetClassColor(class.ID, color); err != nil {
			return err
		}
		changed = true
	}

	if changed {
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved.")
		return nil
	}

	p := a.ws.Prefs()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dark:   %s\n", onOff(p.DarkMode()))
	fmt.Fprintf(out, "accent: %s\n", p.Accent())
	fmt.Fprintf(out, "view:   %s\n", p.LastView())
	for id, color := range p.ClassColors() {
		name := id.String()[:8]
		if c, err := a.ws.FindClass(id.String()); err == nil {
			name = c.Name
		}
		fmt.Fprintf(out, "class %s: %s\n", name, color)
	}
	return nil
}
