package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/carefund/carecalc/internal/config"
	"github.com/carefund/carecalc/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "carecalc-tui [request-file]",
	Short: "Interactive funding eligibility browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := config.DefaultRegistry()

		thresholdsFile, _ := cmd.Flags().GetString("thresholds")
		disregardsFile, _ := cmd.Flags().GetString("disregards")
		if thresholdsFile != "" && disregardsFile != "" {
			loaded, err := config.LoadRegistry(thresholdsFile, disregardsFile)
			if err != nil {
				return err
			}
			registry = loaded
		}

		p := tea.NewProgram(tui.NewModel(args[0], registry), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run interactive browser: %w", err)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().String("thresholds", "", "Path to a thresholds.yaml (requires --disregards)")
	rootCmd.Flags().String("disregards", "", "Path to a disregards.yaml (requires --thresholds)")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
