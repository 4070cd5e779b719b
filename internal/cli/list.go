package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List moods, styles or inspiration ideas",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "moods",
		Short: "List moods and their palettes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(moodTable())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "styles",
		Short: "List visual styles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(styleTable())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "ideas",
		Short: "List inspiration ideas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, idea := range art.Ideas() {
				printInfo("%s  %s", moodLabel(idea.Mood), styleLabel(idea.Style))
				printDetail("%s", idea.Idea)
			}
			printNewline()
			printNextStep("Try one", "moodart generate --mood calm --style watercolor")
		},
	})

	return cmd
}

// newTable returns a table in the CLI's house style.
func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func moodTable() string {
	t := newTable("Mood", "Name", "Primary", "Secondary", "Accent", "Swatch")
	for _, m := range art.Moods() {
		info := m.Info()
		p := palette.For(m)
		t.Row(string(m), info.Emoji+" "+info.Label, p.Primary, p.Secondary, p.Accent, swatch(m))
	}
	return t.Render()
}

func styleTable() string {
	t := newTable("Style", "Name", "Description")
	for _, s := range art.Styles() {
		info := s.Info()
		t.Row(string(s), info.Emoji+" "+info.Label, info.Description)
	}
	return t.Render()
}
