package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rotaboard/rota/internal/printer"
	"github.com/rotaboard/rota/internal/watch"
)

var watchOutputFormat string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream claim activity in real time",
	Long: `Stream claims and releases as they happen, from every client on the
board, until interrupted.

Output Formats:
  default - Human-readable output with timestamps
  json    - Line-delimited JSON for programmatic processing

Examples:
  # Watch the board
  rota watch

  # Export events as JSON
  rota watch --output=json > events.jsonl`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutputFormat, "output", "o", "default", "Output format (default or json)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	var format watch.OutputFormat
	switch watchOutputFormat {
	case "default":
		format = watch.OutputFormatDefault
	case "json":
		format = watch.OutputFormatJSON
	default:
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", watchOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg)
	defer store.Close()

	sub, err := store.Subscribe(ctx)
	if err != nil {
		return printer.Error(
			"failed to subscribe",
			fmt.Sprintf("Error: %v", err),
			[]string{fmt.Sprintf("Check Redis connectivity at %s", cfg.Redis.Addr)},
		)
	}
	defer sub.Close()

	if err := watch.StreamActivity(ctx, sub, format, os.Stdout); err != nil {
		return printer.Error(
			"sync lost",
			fmt.Sprintf("The live subscription ended: %v", err),
			[]string{"Run 'rota watch' again to resubscribe."},
		)
	}
	return nil
}
