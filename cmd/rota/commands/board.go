package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rotaboard/rota/internal/board"
	"github.com/rotaboard/rota/internal/calendar"
	"github.com/rotaboard/rota/internal/printer"
	"github.com/rotaboard/rota/internal/reconcile"
)

var (
	boardWeeks        int
	boardOutputFormat string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the rota board",
	Long: `Show the rolling week grid with the current claims.

The grid is generated fresh from today's date; claims come from a single
snapshot of the shared board.

Output Formats:
  default - Human-readable week grid
  json    - Claimed slots as line-delimited JSON

Examples:
  # Show the configured rolling window
  rota board

  # Show only the next two weeks
  rota board --weeks 2

  # Export current claims
  rota board --output=json > claims.jsonl`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().IntVarP(&boardWeeks, "weeks", "w", 0, "Number of weeks to show (defaults to rota.yml)")
	boardCmd.Flags().StringVarP(&boardOutputFormat, "output", "o", "default", "Output format (default or json)")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var format board.OutputFormat
	switch boardOutputFormat {
	case "default":
		format = board.OutputFormatDefault
	case "json":
		format = board.OutputFormatJSON
	default:
		return printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", boardOutputFormat),
			[]string{"Valid formats: default, json"},
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	weeks := cfg.Weeks
	if boardWeeks > 0 {
		weeks = boardWeeks
	}

	store := openStore(ctx, cfg)
	defer store.Close()
	self := loadIdentity(cfg)

	snapshot, err := firstSnapshot(ctx, store)
	if err != nil {
		return printer.Error(
			"failed to read the board",
			fmt.Sprintf("Error: %v", err),
			[]string{fmt.Sprintf("Check Redis connectivity at %s", cfg.Redis.Addr)},
		)
	}

	reconciler := reconcile.New()
	reconciler.Apply(snapshot)

	if format == board.OutputFormatJSON {
		return board.FormatJSON(os.Stdout, reconciler.View())
	}

	grid := calendar.GenerateWeeks(time.Now(), weeks, cfg.TaskSet())
	board.FormatGrid(os.Stdout, grid, reconciler.View(), self.ID)
	return nil
}
