package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saherflow/dashseed/internal/config"
	"github.com/saherflow/dashseed/internal/seeder"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the widget catalog and layout grid",
	Long: `Print the widget types, the widget candidates with the mapping tags they
require and the dashboard grid. No database connection is made.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out, err := seeder.Catalog(cfg.SeedOptions()).Encode(catalogFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "yaml", "Output format: yaml or json")
}
