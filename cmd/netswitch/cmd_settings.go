package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nectarcloud/netswitch/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.netswitch/settings.yaml.

Settings provide defaults for option flags:
  - cloud:         Used when --cloud is not specified
  - region:        Used when --region is not specified
  - all_resources: Makes check show unaffected resources by default

Examples:
  netswitch settings show
  netswitch settings set cloud production
  netswitch settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			fmt.Printf("%-14s %s\n", name, value)
		}

		printSetting("cloud", s.Cloud)
		printSetting("region", s.Region)
		printSetting("all_resources", fmt.Sprintf("%v", s.AllResources))

		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "cloud":
			s.Cloud = value
			fmt.Printf("Default cloud set to: %s\n", value)
		case "region":
			s.Region = value
			fmt.Printf("Default region set to: %s\n", value)
		case "all_resources":
			s.AllResources = value == "true"
			fmt.Printf("all_resources set to: %v\n", s.AllResources)
		default:
			return fmt.Errorf("unknown setting %q (valid: cloud, region, all_resources)", setting)
		}

		return s.Save()
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		s.Clear()
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
}
