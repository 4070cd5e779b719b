package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/moodart/pkg/art"
	"github.com/matzehuels/moodart/pkg/palette"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PickerModel - Interactive mood and style selection
// =============================================================================

// pickStep is the picker's current page.
type pickStep int

const (
	pickMood pickStep = iota
	pickStyle
	pickDone
)

// PickerModel is the bubbletea model for choosing a mood, then a style.
type PickerModel struct {
	Moods  []art.Mood
	Styles []art.Style
	Cursor int
	Step   pickStep

	Mood  art.Mood
	Style art.Style
}

// NewPickerModel creates a picker starting on the mood list.
func NewPickerModel() PickerModel {
	return PickerModel{Moods: art.Moods(), Styles: art.Styles()}
}

// Done reports whether both choices were made.
func (m PickerModel) Done() bool {
	return m.Step == pickDone
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < m.size()-1 {
			m.Cursor++
		}
	case "backspace", "left", "h":
		if m.Step == pickStyle {
			m.Step = pickMood
			m.Cursor = indexOf(m.Moods, m.Mood)
		}
	case "enter", "right", "l":
		switch m.Step {
		case pickMood:
			m.Mood = m.Moods[m.Cursor]
			m.Step = pickStyle
			m.Cursor = 0
		case pickStyle:
			m.Style = m.Styles[m.Cursor]
			m.Step = pickDone
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PickerModel) size() int {
	if m.Step == pickStyle {
		return len(m.Styles)
	}
	return len(m.Moods)
}

func (m PickerModel) View() string {
	var b strings.Builder

	switch m.Step {
	case pickMood:
		b.WriteString(StyleTitle.Render("How are you feeling?"))
	case pickStyle:
		b.WriteString(StyleTitle.Render("Pick a style") + "  " + moodLabel(m.Mood))
	default:
		return ""
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  ← back  q quit"))
	b.WriteString("\n\n")

	for i := range m.size() {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		var label, detail string
		if m.Step == pickMood {
			mood := m.Moods[i]
			info := mood.Info()
			label = info.Emoji + " " + info.Label
			detail = swatch(mood)
		} else {
			info := m.Styles[i].Info()
			label = info.Emoji + " " + info.Label
			detail = listDimStyle.Render(info.Description)
		}

		line := fmt.Sprintf("%s%-18s", cursor, label)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString(" " + detail + "\n")
	}

	return b.String()
}

// swatch renders the mood palette as three coloured blocks.
func swatch(m art.Mood) string {
	p := palette.For(m)
	var b strings.Builder
	for _, hex := range []string{p.Primary, p.Secondary, p.Accent} {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██"))
	}
	return b.String()
}

func indexOf[T comparable](list []T, v T) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return 0
}

// =============================================================================
// Command
// =============================================================================

// pickCommand creates the interactive pick command.
func (c *CLI) pickCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a mood and style interactively, then generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			final, err := tea.NewProgram(NewPickerModel(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}
			picked, ok := final.(PickerModel)
			if !ok || !picked.Done() {
				printInfo("Nothing selected")
				return nil
			}
			opts := flags.options(c, picked.Mood, picked.Style)
			return c.runGenerate(cmd.Context(), opts, flags)
		},
	}

	flags.register(cmd)
	return cmd
}
