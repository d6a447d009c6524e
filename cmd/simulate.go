package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/wellquiz/internal/logging"
	"github.com/abhisek/wellquiz/internal/simulate"
	"github.com/abhisek/wellquiz/internal/ui/theme"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many runs with a random player and report the winners",
	Long: `Play many quiz runs without a terminal UI, picking a random side each
time. Useful for checking how balanced a custom catalog is.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Int("runs", 1000, "Number of runs to play")
	simulateCmd.Flags().Int("choices", 0, "Picks per run before stopping; 0 plays until prompts run out")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	runs, _ := cmd.Flags().GetInt("runs")
	choices, _ := cmd.Flags().GetInt("choices")

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	report, err := simulate.Run(cat, simulate.Config{
		Runs:       runs,
		Seed:       cfg.Seed,
		MaxChoices: choices,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "Intervention", "Wins", "Win %", "Avg score").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(theme.Primary)
			}
			return s
		})
	for i, tally := range report.Tallies {
		t.Row(
			fmt.Sprintf("%d", i+1),
			tally.Emoji+" "+tally.Name,
			fmt.Sprintf("%d", tally.Wins),
			fmt.Sprintf("%.1f%%", 100*float64(tally.Wins)/float64(report.Runs)),
			fmt.Sprintf("%.2f", tally.AvgScore(report.Runs)),
		)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d runs, %d picks, ended: %s\n", report.Runs, report.Choices, report.Summary())
	return nil
}
