package cmd

import (
	"fmt"

	"github.com/gumdev/gum/internal/config"
	"github.com/gumdev/gum/internal/git"
	"github.com/gumdev/gum/internal/ui"
)

// loadState builds the per-invocation configuration state: group file plus
// both git scopes, read concurrently.
func loadState() (*config.State, error) {
	store, err := config.DefaultStore()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return config.Load(store, git.NewClient()), nil
}

// printUsing prints the currently effective identity line, if any.
func printUsing(state *config.State) {
	if using := state.UsingUser(); using != nil {
		ui.Note("Currently using: %s <%s>", using.Name, using.Email)
	}
}
