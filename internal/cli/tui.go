package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/statscard/statscard/pkg/themes"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// swatch renders a small colored block for a hex color. Empty colors
// render as a placeholder so the columns stay aligned.
func swatch(hex string) string {
	if hex == "" {
		return listDimStyle.Render("  —  ")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex)).Render("█████")
}

// renderThemeTable renders the theme catalog as a table. When cursor is
// non-negative, that row is highlighted and marked.
func renderThemeTable(names []string, cursor int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(names))
	for i, name := range names {
		t := themes.Lookup(name)
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker + name,
			swatch(t.Title),
			swatch(t.Icon),
			swatch(t.Text),
			swatch(t.Bg),
			swatch(t.Ring),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Theme", "Title", "Icon", "Text", "Bg", "Ring").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == cursor && col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// =============================================================================
// ThemeListModel - Interactive theme selection
// =============================================================================

// ThemeListModel is the bubbletea model for interactive theme selection.
type ThemeListModel struct {
	Themes   []string
	Cursor   int
	Selected string
}

// NewThemeListModel creates a new theme list model.
func NewThemeListModel(names []string) ThemeListModel {
	return ThemeListModel{Themes: names}
}

func (m ThemeListModel) Init() tea.Cmd {
	return nil
}

func (m ThemeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Themes)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Themes[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ThemeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderThemeTable(m.Themes, m.Cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Themes))))

	return b.String()
}
