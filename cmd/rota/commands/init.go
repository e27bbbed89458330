package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotaboard/rota/internal/printer"
	"github.com/rotaboard/rota/internal/scaffold"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a rota.yml in the current directory",
	Long: `Create a starter rota.yml in the current directory.

The generated file defines the board name, Redis connection, the rolling
window of weeks, and the fixed tasks for each weekday. Edit it, share the
board name and Redis address with everyone on the rota, and you're done.

Examples:
  rota init
  rota init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Replace an existing rota.yml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := scaffold.Initialize(initForce); err != nil {
		return printer.Error(
			"initialization failed",
			fmt.Sprintf("Error: %v", err),
			nil,
		)
	}

	printer.Success("created %s\n", scaffold.ConfigFileName)
	printer.Info("Next steps:\n")
	printer.Info("  1. Edit %s (board name, Redis address, tasks)\n", scaffold.ConfigFileName)
	printer.Info("  2. Pick a display name:  rota name <your-name>\n")
	printer.Info("  3. See the board:        rota board\n")
	return nil
}
