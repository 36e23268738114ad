package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/karmanyte/matlens/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive diagram shell",
	Long: `Starts the terminal shell around the diagram catalog.

Navigation:
  1..N      - switch to diagram N
  arrows    - move the hovered cell of the active grid
  tab       - cycle the active grid
  mouse     - hover cells directly (motion tracking)
  esc       - clear the hover (pointer-leave)
  q         - quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		printError("load catalog", err)
		return err
	}

	model, err := tui.NewModel(cat)
	if err != nil {
		printError("mount diagram", err)
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		printError("shell", err)
		return err
	}

	return nil
}
