package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gumdev/gum/internal/ui"
)

var (
	setFlagName  string
	setFlagEmail string
)

var setCmd = &cobra.Command{
	Use:   "set <group_name>",
	Short: "Create or update a user configuration group",
	Long: `Create or update a user configuration group. Only the supplied fields
are changed; a brand-new group starts with empty fields for whatever is not
supplied.`,
	Args: cobra.ExactArgs(1),
	Example: `  gum set work --name "Bob" --email "bob@co.com"
  gum set work --email "bob@home.com"`,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&setFlagName, "name", "", "Username for git commits")
	setCmd.Flags().StringVar(&setFlagEmail, "email", "", "Email address for git commits")
}

func runSet(cmd *cobra.Command, args []string) error {
	group := args[0]

	state, err := loadState()
	if err != nil {
		return err
	}

	var name, email *string
	if cmd.Flags().Changed("name") {
		name = &setFlagName
	}
	if cmd.Flags().Changed("email") {
		email = &setFlagEmail
	}

	if err := state.SetGroup(group, name, email); err != nil {
		return err
	}

	ui.Success("Successfully set %s group", group)
	return nil
}
