package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaboard/rota/internal/identity"
	"github.com/rotaboard/rota/internal/namestore"
	"github.com/rotaboard/rota/internal/printer"
)

var nameCmd = &cobra.Command{
	Use:   "name [NEW_NAME]",
	Short: "Show or set your display name",
	Long: `Show or set the display name attached to your claims.

The name can be changed at any time; your color is derived from it, so
everyone on the board sees the same color for you without any coordination.
Existing claims keep the name and color they were made with.

Examples:
  rota name
  rota name Alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runName,
}

func init() {
	rootCmd.AddCommand(nameCmd)
}

func runName(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := namestore.New(cfg.Identity.NameFile)

	if len(args) == 0 {
		name, err := store.Get()
		if err != nil {
			return printer.Error("failed to read display name", fmt.Sprintf("Error: %v", err), nil)
		}
		if name == "" {
			printer.Info("No display name set.\n")
			printer.Info("Pick one:  rota name <your-name>\n")
			return nil
		}
		printer.Info("%s (%s)\n", name, identity.ColorFor(name))
		return nil
	}

	if err := store.Set(args[0]); err != nil {
		return printer.Error(
			"failed to set display name",
			fmt.Sprintf("Error: %v", err),
			nil,
		)
	}
	printer.Success("display name set to %s (%s)\n", args[0], identity.ColorFor(args[0]))
	return nil
}
