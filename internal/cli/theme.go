package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deckctl/internal/prefs"
	"deckctl/internal/present"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd, themeToggleCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the saved presenter theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prefs.Default()
		if err != nil {
			return err
		}
		t, err := s.LoadTheme()
		if err != nil {
			// missing or unreadable preferences fall back to the default
			t = present.DefaultTheme
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <dark|light>",
	Short:     "Save the presenter theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(present.ThemeDark), string(present.ThemeLight)},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := present.ParseTheme(args[0])
		if !ok {
			return fmt.Errorf("unknown theme %q (want dark or light)", args[0])
		}
		return saveTheme(cmd, t)
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the saved presenter theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prefs.Default()
		if err != nil {
			return err
		}
		t, _ := s.LoadTheme()
		return saveTheme(cmd, t.Flip())
	},
}

func saveTheme(cmd *cobra.Command, t present.Theme) error {
	s, err := prefs.Default()
	if err != nil {
		return err
	}
	if err := s.SaveTheme(t); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ theme: %s (%s)\n", t, s.Path())
	return nil
}
