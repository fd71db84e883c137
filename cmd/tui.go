package cmd

import (
	"fmt"

	"github.com/ThinkBotz/samattendx/internal/tui"
	"github.com/ThinkBotz/samattendx/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calendar",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}
	defer app.Close()

	theme.SetActive(app.Config.Appearance.Theme)

	m := tui.NewApp(app.Store, app.Profile, app.Snapshot, app.target(), app.policy())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
