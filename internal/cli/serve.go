package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"deckctl/internal/prefs"
	"deckctl/internal/system"
	"deckctl/internal/web"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "address to bind (host:port)")
	serveCmd.Flags().BoolP("open", "o", false, "open the browser after start")
	serveCmd.Flags().BoolP("watch", "w", false, "reload the deck when the file changes")
	serveCmd.Flags().String("style", "", "chroma style for code blocks")
}

var serveCmd = &cobra.Command{
	Use:   "serve [deck.md]",
	Short: "Present a deck in the browser",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cfg.Server
		if f := cmd.Flags(); f.Changed("addr") {
			sc.Addr, _ = f.GetString("addr")
		}
		if f := cmd.Flags(); f.Changed("open") {
			sc.Open, _ = f.GetBool("open")
		}
		if f := cmd.Flags(); f.Changed("watch") {
			sc.Watch, _ = f.GetBool("watch")
		}
		if f := cmd.Flags(); f.Changed("style") {
			sc.HighlightStyle, _ = f.GetString("style")
		}

		d, err := loadDeck(args)
		if err != nil {
			return err
		}
		themes, err := prefs.Default()
		if err != nil {
			return err
		}
		srv, err := web.New(web.Options{
			Addr:   sc.Addr,
			Deck:   d,
			Style:  sc.HighlightStyle,
			Watch:  sc.Watch,
			Themes: themes,
		})
		if err != nil {
			return err
		}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		url := web.LocalURL(sc.Addr)
		system.Logger.Info("presenting in browser", "url", url, "deck", d.Title)
		if sc.Open {
			if err := web.OpenBrowser(url); err != nil {
				system.Logger.Warn("failed to open browser", "err", err)
			}
		}
		return srv.Start(ctx)
	},
}
