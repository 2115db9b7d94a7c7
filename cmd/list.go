package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gumdev/gum/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all user configuration groups",
	Long:    `Display the currently effective git identity and all stored groups, including the synthesized "global" entry.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	state, err := loadState()
	if err != nil {
		return err
	}

	if state.UsingUser() == nil {
		ui.Plain("No git identity configured.")
	} else {
		printUsing(state)
	}

	all := state.AllGroups()
	if len(all) == 0 {
		ui.Plain("No user configuration found.")
		return nil
	}

	ui.PrintGroupsTable(all)
	return nil
}
