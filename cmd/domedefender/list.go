package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dome-defender/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its playfield size in world units.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	games := registry.List()
	out := cmd.OutOrStdout()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Playfield")
	for _, info := range games {
		g, err := registry.Create(info.ID)
		if err != nil {
			return err
		}
		width, height := registry.Dimensions(g)
		t.Row(info.ID, registry.TitleOf(g), fmt.Sprintf("%.0fx%.0f", width, height))
	}

	fmt.Fprintln(out, t.String())
	fmt.Fprintln(out, "Run 'domedefender play <id>' to play a game.")
	return nil
}
