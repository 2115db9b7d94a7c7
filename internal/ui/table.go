package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gumdev/gum/internal/config"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
		Padding(0, 1)
)

// PrintGroupsTable prints all groups sorted by name, one row per group.
func PrintGroupsTable(groups map[string]config.User) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("GROUP", "NAME", "EMAIL")

	for _, name := range names {
		user := groups[name]
		t.Row(name, user.Name, user.Email)
	}

	fmt.Fprintln(out, t.String())
}
