package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/saherflow/dashseed/internal/seeder"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show seeded row counts and precondition state",
	Long: `Show how many rows the seeded tables hold and whether the admin user,
the device type and its data mappings are present. Nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		opts := e.cfg.SeedOptions()
		st, err := seeder.New(e.db, opts, e.log).Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read status: %w", err)
		}

		color.Cyan("📋 Seeded tables")
		for _, t := range st.Tables {
			fmt.Printf("  %-22s %d\n", t.Table, t.Rows)
		}
		fmt.Println()

		color.Cyan("🔎 Preconditions")
		printCheck(fmt.Sprintf("admin user %s", opts.AdminEmail), st.AdminFound)
		printCheck(fmt.Sprintf("device type %s", opts.DeviceType), st.DeviceTypeFound)
		if len(st.MappingsFound) > 0 {
			color.Green("  ✅ mappings: %s", strings.Join(st.MappingsFound, ", "))
		}
		if len(st.MappingsMissing) > 0 {
			color.Yellow("  ⚠️  missing mappings: %s", strings.Join(st.MappingsMissing, ", "))
		}

		if !st.Ready() {
			color.Red("\n❌ Seed would fail: preconditions missing")
		}
		return nil
	},
}

func printCheck(label string, ok bool) {
	if ok {
		color.Green("  ✅ %s", label)
		return
	}
	color.Red("  ❌ %s", label)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
