package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gumdev/gum/internal/git"
	"github.com/gumdev/gum/internal/ui"
)

var useFlagGlobal bool

var useCmd = &cobra.Command{
	Use:   "use <group_name>",
	Short: "Apply a user configuration group to git",
	Long: `Write a group's identity to the git configuration. The repository-local
scope is the default; --global targets the user-wide configuration instead.`,
	Args: cobra.ExactArgs(1),
	Example: `  gum use work            # Set for the current repository
  gum use work --global   # Set user-wide`,
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.Flags().BoolVar(&useFlagGlobal, "global", false, "Apply to the global git configuration")
}

func runUse(cmd *cobra.Command, args []string) error {
	group := args[0]

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	state, err := loadState()
	if err != nil {
		return err
	}

	if err := state.Apply(group, useFlagGlobal); err != nil {
		return err
	}

	if useFlagGlobal && state.GlobalUser != nil {
		ui.Success("Global use: %s <%s>", state.GlobalUser.Name, state.GlobalUser.Email)
	}
	printUsing(state)
	return nil
}
