package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/statscard/statscard/pkg/themes"
)

// themesCommand creates the themes command for browsing the theme catalog.
func (c *CLI) themesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available card themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return c.runThemePicker()
			}
			fmt.Println(renderThemeTable(themes.Names(), -1))
			printNewline()
			printNextStep("Preview one", "statscard render <username> --theme dark")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a theme interactively")

	return cmd
}

// runThemePicker opens the interactive theme browser and prints the
// selected theme name so it can be piped into other commands.
func (c *CLI) runThemePicker() error {
	model := NewThemeListModel(themes.Names())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("theme picker: %w", err)
	}

	m, ok := final.(ThemeListModel)
	if !ok || m.Selected == "" {
		printInfo("No theme selected")
		return nil
	}

	printSuccess("Selected theme: %s", m.Selected)
	printNextStep("Use it", fmt.Sprintf("statscard render <username> --theme %s", m.Selected))
	return nil
}
