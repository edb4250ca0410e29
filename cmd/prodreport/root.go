package main

import (
	"github.com/spf13/cobra"

	"prodreport/local-app/internal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "prodreport",
	Short: "Daily production reporting for the shop floor",
	Long: `Records daily production reports, tracks efficiency against standard
times, and exports the report log to a spreadsheet. Running without a
subcommand starts the interactive shell.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cfgPath)
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the production dashboard and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cfgPath)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [filename]",
	Short: "Export all reports to an .xlsx file and exit",
	Long: `Writes every report to a spreadsheet under the configured export
directory. Requires the admin credentials.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := ""
		if len(args) > 0 {
			filename = args[0]
		}
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		return runExport(cfgPath, filename, username, password)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "path to the configuration file")
	exportCmd.Flags().StringP("username", "u", "", "admin username")
	exportCmd.Flags().StringP("password", "p", "", "admin password")
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
}
