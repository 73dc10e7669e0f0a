package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deckctl/internal/config"
	"deckctl/internal/deck"
	"deckctl/internal/prefs"
	"deckctl/internal/settings"
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("yes", "y", false, "accept defaults without the interactive form")
	initCmd.Flags().String("deck", "slides.md", "deck file to create when missing")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write deckctl.yaml and a starter deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		store, err := prefs.Default()
		if err != nil {
			return err
		}
		theme, _ := store.LoadTheme()

		answers := settings.FromConfig(cfg, theme)
		if answers.Deck == "" || cmd.Flags().Changed("deck") {
			answers.Deck, _ = cmd.Flags().GetString("deck")
		}
		if !yes {
			if answers, err = settings.Run(answers); err != nil {
				return err
			}
		}
		return writeInit(cmd, answers, store)
	},
}

func writeInit(cmd *cobra.Command, a settings.Answers, store *prefs.Store) error {
	out := cmd.OutOrStdout()
	c := *cfg
	a.Apply(&c)
	if err := c.Validate(); err != nil {
		return err
	}
	path := configPath
	if path == "" {
		path = config.LocalFile
	}
	if err := c.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ config: %s\n", path)

	if c.Deck != "" {
		if _, err := os.Stat(c.Deck); os.IsNotExist(err) {
			if err := os.WriteFile(c.Deck, []byte(deck.Starter), 0o644); err != nil {
				return fmt.Errorf("write starter deck: %w", err)
			}
			fmt.Fprintf(out, "✓ deck:   %s\n", c.Deck)
		} else {
			fmt.Fprintf(out, "• deck:   %s (kept)\n", c.Deck)
		}
	}

	if err := store.SaveTheme(a.Theme); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ theme:  %s\n", a.Theme)
	return nil
}
