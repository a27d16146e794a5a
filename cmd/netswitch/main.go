// Netswitch - Nectar project networking migration helper
//
// Reports which of a project's network resources are still tied to the
// legacy SDN backend and switches the project's declared networking mode
// via a project tag.
//
//	netswitch check [--all-resources] [--json]   # report resources
//	netswitch switch {legacy|modern} [--yes]     # flip the project tag
//
// Credentials come from the ambient OpenStack configuration: OS_*
// environment variables, or a clouds.yaml entry selected with --cloud.
// Both commands run behind a sanity gate that requires the
// TenantManager role and a project tag in agreement with the observed
// backend of the project's external network; when the gate fails, its
// guidance is printed and the command is skipped without an error exit.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nectarcloud/netswitch/pkg/cloud"
	"github.com/nectarcloud/netswitch/pkg/migrate"
	"github.com/nectarcloud/netswitch/pkg/settings"
	"github.com/nectarcloud/netswitch/pkg/util"
	"github.com/nectarcloud/netswitch/pkg/version"
)

type appState struct {
	// Global option flags
	cloudName string
	region    string
	verbose   bool

	// Built once in PersistentPreRunE and injected everywhere
	client *cloud.Client
	mig    *migrate.Migrator

	userSettings *settings.Settings
}

var app appState

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "netswitch",
	Short:             "Check and switch a project's SDN networking backend",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Netswitch helps move a project from legacy to modern networking.

check reports which of the project's networks, routers, floating IPs and
servers still sit on the legacy backend, with a per-resource
recommendation. switch records the project's networking mode by adding
or removing the legacy tag on the project.

Examples:
  netswitch check
  netswitch check --all-resources
  netswitch switch modern`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Offline commands don't need a cloud connection
		if isOfflineCommand(cmd) {
			return nil
		}

		// Set log level: quiet by default, verbose on -v
		if app.verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		// Load user settings
		s, err := settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			s = &settings.Settings{}
		}
		app.userSettings = s

		// Apply defaults from settings, then environment
		if app.cloudName == "" {
			app.cloudName = s.Cloud
		}
		if app.cloudName == "" {
			app.cloudName = os.Getenv("OS_CLOUD")
		}
		if app.region == "" {
			app.region = s.Region
		}
		if app.region == "" {
			app.region = os.Getenv("OS_REGION_NAME")
		}

		// Connect once; every component gets this client
		client, err := cloud.New(cmd.Context(), cloud.Options{
			Cloud:  app.cloudName,
			Region: app.region,
		})
		if err != nil {
			return fmt.Errorf("connecting to cloud: %w", err)
		}
		app.client = client
		app.mig = migrate.New(client, os.Stdout)

		return nil
	},
}

// runGated runs fn behind the sanity gate. A failed gate has already
// printed its guidance; the command is skipped and the process exits
// normally.
func runGated(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	ctx := cmd.Context()

	ok, err := app.mig.CheckSanity(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return fn(ctx)
}

// isOfflineCommand reports whether cmd works without a cloud connection.
func isOfflineCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "version", "help", "completion", cobra.ShellCompRequestCmd:
			return true
		}
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("netswitch", version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&app.cloudName, "cloud", "", "Named cloud from clouds.yaml (default: OS_CLOUD, else environment credentials)")
	rootCmd.PersistentFlags().StringVar(&app.region, "region", "", "Cloud region (default: OS_REGION_NAME)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(checkCmd, switchCmd, settingsCmd, versionCmd)
}
