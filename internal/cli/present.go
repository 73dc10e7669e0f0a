package cli

import (
	"github.com/spf13/cobra"

	"deckctl/internal/app"
	"deckctl/internal/prefs"
)

func init() {
	rootCmd.AddCommand(presentCmd)
	presentCmd.Flags().String("log-file", "", "write logs here while presenting (default: discard)")
}

var presentCmd = &cobra.Command{
	Use:   "present [deck.md]",
	Short: "Present a deck in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, _ := cmd.Flags().GetString("log-file")
		return runPresent(args, logFile)
	},
}

func runPresent(args []string, logFile string) error {
	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	themes, err := prefs.Default()
	if err != nil {
		return err
	}
	return app.Start(app.Options{Deck: d, Themes: themes, LogFile: logFile})
}
