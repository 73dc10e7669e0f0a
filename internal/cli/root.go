package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deckctl/internal/config"
	"deckctl/internal/deck"
	"deckctl/internal/system"
)

var (
	configPath string
	debug      bool
	// cfg is loaded once before any command runs.
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "deckctl [deck.md]",
	Short: "deckctl – present markdown slide decks",
	Long: "deckctl presents a markdown slide deck in the terminal or in the browser " +
		"and exports it to PDF.",
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		system.SetDebug(debug)
		path := configPath
		if path == "" {
			path = config.DefaultFile()
		}
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		cfg = c
		system.Logger.Debug("config loaded", "path", path)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: present in the terminal
		return runPresent(args, "")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./deckctl.yaml, then the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// errNoDeck is returned when neither an argument nor the config names a deck.
var errNoDeck = errors.New("no deck given: pass a markdown file or set deck in deckctl.yaml")

// loadDeck reads the deck named by args, falling back to the configured one.
func loadDeck(args []string) (*deck.Deck, error) {
	path := cfg.Deck
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errNoDeck
	}
	return deck.Load(path)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
