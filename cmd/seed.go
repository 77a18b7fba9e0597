package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/saherflow/dashseed/internal/seeder"
)

var (
	seedDryRun     bool
	seedAdminEmail string
	seedDeviceType string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed widget types, widgets and the MPFM dashboard",
	Long: `Delete every row of dashboard_layouts, dashboards, widget_definitions and
widget_types, then recreate the MPFM production dashboard.

Requires the admin user and the MPFM device type to exist. Charts whose
device data mapping is missing are left out together with their layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		opts := e.cfg.SeedOptions()
		if seedAdminEmail != "" {
			opts.AdminEmail = seedAdminEmail
		}
		if seedDeviceType != "" {
			opts.DeviceType = seedDeviceType
		}
		opts.DryRun = seedDryRun

		res, err := seeder.New(e.db, opts, e.log).Seed(ctx)
		if err != nil {
			return fmt.Errorf("error seeding widgets: %w", err)
		}

		printResult(res)
		return nil
	},
}

func printResult(res *seeder.Result) {
	if res.DryRun {
		color.Yellow("\n🧪 Dry run complete, nothing was committed")
	} else {
		color.Green("\n✅ Widget system seeded successfully")
	}
	fmt.Printf("  • Widget types: %d\n", res.WidgetTypes)
	fmt.Printf("  • Widget definitions: %d\n", res.WidgetDefinitions)
	fmt.Printf("  • Dashboards: %d with %d widgets\n", res.Dashboards, res.Layouts)
	if len(res.SkippedWidgets) > 0 {
		color.Yellow("  • Skipped widgets (missing mappings): %s", strings.Join(res.SkippedWidgets, ", "))
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Run every step then roll back")
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", "", "Email of the user recorded as creator (overrides seed.admin_email)")
	seedCmd.Flags().StringVar(&seedDeviceType, "device-type", "", "Device type whose mappings feed the charts (overrides seed.device_type)")
}
