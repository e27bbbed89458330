package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rotaboard/rota/internal/claim"
	"github.com/rotaboard/rota/internal/printer"
	"github.com/rotaboard/rota/internal/reconcile"
	"github.com/rotaboard/rota/pkg/slotboard"
)

var claimCmd = &cobra.Command{
	Use:   "claim DATE TASK",
	Short: "Toggle a slot: claim it, or release your own claim",
	Long: `Toggle the slot for DATE (YYYY-MM-DD) and TASK.

An unclaimed slot becomes yours; a slot you already hold is released. A slot
held by someone else is left alone - claims are first come, first served, and
only the holder can release one.

There is no lock: if two people claim the same slot at the same moment, the
store keeps whichever write lands last.

Examples:
  rota claim 2024-01-01 Breakfast
  rota claim 2024-01-06 "Morning Feed"`,
	Args: cobra.ExactArgs(2),
	RunE: runClaim,
}

func init() {
	rootCmd.AddCommand(claimCmd)
}

func runClaim(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	date, err := time.Parse(slotboard.DateFormat, args[0])
	if err != nil {
		return printer.Error(
			"invalid date",
			fmt.Sprintf("%q is not a YYYY-MM-DD date.", args[0]),
			[]string{"Example: rota claim 2024-01-01 Breakfast"},
		)
	}
	slotID := slotboard.SlotID(date, args[1])

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(ctx, cfg)
	defer store.Close()
	self := loadIdentity(cfg)

	// Decide against the latest snapshot, exactly as a live view would
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

	protocol := claim.NewProtocol(store, reconciler)
	outcome, err := protocol.Toggle(ctx, self, slotID)
	if err != nil {
		if errors.Is(err, claim.ErrNotReady) {
			return printer.Error(
				"not ready to claim",
				"You need a display name and a reachable board before claiming.",
				[]string{
					"Set a display name:\n  rota name <your-name>",
					fmt.Sprintf("Check Redis connectivity at %s (or remove 'offline: true' from rota.yml)", cfg.Redis.Addr),
				},
			)
		}
		return printer.Error(
			"claim failed",
			fmt.Sprintf("The write was not accepted: %v", err),
			[]string{"Nothing changed - try again."},
		)
	}

	switch outcome {
	case claim.OutcomeClaimed:
		printer.Success("%s is yours, %s\n", slotID, self.Name)
	case claim.OutcomeReleased:
		printer.Success("released %s\n", slotID)
	case claim.OutcomeIgnored:
		holder, _ := reconciler.Get(slotID)
		printer.Info("%s is already taken by %s - left untouched\n", slotID, holder.ClaimantName)
	}
	return nil
}
