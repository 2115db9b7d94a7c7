package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gumdev/gum/internal/ui"
)

var deleteFlagYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <group_name>",
	Short: "Delete a user configuration group",
	Long:  `Remove a stored user configuration group. The synthesized "global" entry cannot be deleted.`,
	Args:  cobra.ExactArgs(1),
	Example: `  gum delete work
  gum delete work --yes`,
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteFlagYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	group := args[0]

	state, err := loadState()
	if err != nil {
		return err
	}

	// Only prompt when someone is actually at the keyboard.
	if !deleteFlagYes && ui.IsInteractive() {
		confirmed, err := ui.Confirm(fmt.Sprintf("Delete group '%s'?", group))
		if err != nil {
			return err
		}
		if !confirmed {
			ui.Plain("Cancelled")
			return nil
		}
	}

	if err := state.DeleteGroup(group); err != nil {
		return err
	}

	ui.Success("Successfully deleted %s group", group)
	return nil
}
