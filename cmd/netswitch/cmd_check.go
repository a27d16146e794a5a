package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var (
	checkAll  bool
	checkJSON bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the networking status of the project",
	Long: `Check which of the project's resources still sit on the legacy backend.

Queries the project's non-external networks, all routers, floating IPs
and servers, and prints a table of resources with a per-resource
recommendation. Resources that need no action are hidden unless
--all-resources is given.

Examples:
  netswitch check
  netswitch check --all-resources
  netswitch check --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll := checkAll || app.userSettings.AllResources

		return runGated(cmd, func(ctx context.Context) error {
			if checkJSON {
				report, err := app.mig.BuildReport(ctx, showAll)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			return app.mig.Check(ctx, showAll)
		})
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkAll, "all-resources", false, "Show all resources, not just those with recommendations")
	checkCmd.Flags().BoolVar(&checkAll, "all", false, "Alias for --all-resources")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report as JSON")
}
