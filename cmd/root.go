package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/saherflow/dashseed/internal/config"
)

var (
	cfgFile  string
	logLevel string
	Version  = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║   📊  dashseed                               ║",
		"║   MPFM production dashboard seeder           ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("   ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "dashseed",
	Short: "Seed the MPFM production dashboard widgets",
	Long: `
dashseed populates the widget_types, widget_definitions, dashboards and
dashboard_layouts tables with the MPFM production dashboard.

The run happens in one transaction: previous rows are deleted and the full
dashboard is recreated, or nothing changes at all.

Database Support:
- PostgreSQL
- MySQL
- SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("dashseed version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		_ = cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dashseed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dashseed version %s\n", Version)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dashseed.config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// .env wins over .env.local; godotenv never overrides variables already set
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("dashseed.config")
	}

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}

	if logLevel != "" {
		viper.Set("log.level", logLevel)
	}
}
