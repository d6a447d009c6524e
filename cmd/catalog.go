package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellquiz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and export prompt catalogs",
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the prompts and interventions of the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg.Catalog)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Interventions (%d):\n", len(c.Interventions))
		for _, iv := range c.Interventions {
			fmt.Fprintf(out, "  %s %s\n", iv.Emoji, iv.Name)
			if iv.Dosage != "" || iv.Timing != "" {
				fmt.Fprintf(out, "      %s • %s\n", iv.Dosage, iv.Timing)
			}
		}
		fmt.Fprintf(out, "\nPrompts (%d):\n", len(c.Prompts))
		for _, p := range c.Prompts {
			fmt.Fprintf(out, "  %3d  %s  [%s]\n", p.ID, p.Text, strings.Join(p.Interventions, ", "))
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema and reference rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d prompts, %d interventions)\n",
			args[0], len(c.Prompts), len(c.Interventions))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as JSON or YAML",
	Long: `Write the active catalog as JSON or YAML, to stdout or --output.
Exporting the built-in catalog is the easiest way to start a custom one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg.Catalog)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		formatVal, _ := cmd.Flags().GetString("format")

		var format catalog.Format
		switch strings.ToLower(formatVal) {
		case "":
			format = catalog.FormatYAML
			if output != "" {
				format = catalog.FormatFromPath(output)
			}
		case "json":
			format = catalog.FormatJSON
		case "yaml", "yml":
			format = catalog.FormatYAML
		default:
			return fmt.Errorf("invalid format %q: must be json or yaml", formatVal)
		}

		data, err := catalog.Encode(c, format)
		if err != nil {
			return err
		}
		if output == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().String("format", "", "Output format: json or yaml (default from --output extension, else yaml)")
	catalogExportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
