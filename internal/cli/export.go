package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"deckctl/internal/export"
	"deckctl/internal/prefs"
	"deckctl/internal/system"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	f := exportCmd.Flags()
	f.StringP("output", "o", "", "PDF file to write")
	f.String("url", "", "print this page instead of serving the deck")
	f.Duration("timeout", 0, "upper bound for the page to reach network idle")
	f.Duration("settle", 0, "delay after load before printing")
	f.String("chrome", "", "Chrome or Chromium binary")
	f.Int("width", 0, "page width in CSS pixels")
	f.Int("height", 0, "page height in CSS pixels")
}

var exportCmd = &cobra.Command{
	Use:   "export [deck.md]",
	Short: "Export a deck to PDF with headless Chrome",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := export.FromConfig(cfg.Export)
		f := cmd.Flags()
		if f.Changed("output") {
			opts.Output, _ = f.GetString("output")
		}
		if f.Changed("timeout") {
			opts.Timeout, _ = f.GetDuration("timeout")
		}
		if f.Changed("settle") {
			opts.Settle, _ = f.GetDuration("settle")
		}
		if f.Changed("chrome") {
			opts.ChromePath, _ = f.GetString("chrome")
		}
		if f.Changed("width") {
			opts.Width, _ = f.GetInt("width")
		}
		if f.Changed("height") {
			opts.Height, _ = f.GetInt("height")
		}
		opts.URL, _ = f.GetString("url")
		opts.Reporter = export.NewReporter(cmd.ErrOrStderr())

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if opts.URL == "" {
			d, err := loadDeck(args)
			if err != nil {
				return err
			}
			themes, err := prefs.Default()
			if err != nil {
				return err
			}
			url, stop, err := export.ServeDeck(ctx, d, cfg.Server.HighlightStyle, themes)
			if err != nil {
				return err
			}
			defer stop()
			opts.URL = url
		}

		system.Logger.Info("exporting", "url", opts.URL, "output", opts.Output)
		res, err := export.Export(ctx, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ PDF written: %s\n", res.Path)
		fmt.Fprintf(cmd.OutOrStdout(), "File size: %.2f MB\n", res.MB())
		return nil
	},
}
