package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/wellquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "wellquiz",
	Short: "Energy & wellness quiz for the terminal",
	Long: `Wellquiz shows two symptoms at a time for 30 seconds. Pick the one that
bothers you more; every pick scores the supplements and activities that help
with it, and the top of the ranking becomes your personalized plan.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides WELLQUIZ_CONFIG env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON or YAML catalog (overrides the catalog config key)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for pair selection; 0 picks one from the clock")
	rootCmd.PersistentFlags().Bool("no-splash", false, "Skip the intro animation")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads config layers, then applies command-line overrides,
// which take highest priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.Catalog = p
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	return cfg, nil
}
