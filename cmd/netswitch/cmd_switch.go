package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nectarcloud/netswitch/pkg/migrate"
)

var switchYes bool

var switchCmd = &cobra.Command{
	Use:       "switch {legacy|modern}",
	Short:     "Set the project's networking mode",
	ValidArgs: []string{string(migrate.ModeLegacy), string(migrate.ModeModern)},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `Set the project's networking mode by tagging the project.

Switching is a single tag change on the project; resources are not
touched. Allow 2 minutes for the change to propagate to all services
before creating new resources.

Examples:
  netswitch switch modern
  netswitch switch legacy --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := migrate.ParseMode(args[0])
		if err != nil {
			return err
		}

		return runGated(cmd, func(ctx context.Context) error {
			if !switchYes && !confirmSwitch(mode) {
				fmt.Println("Aborted.")
				return nil
			}
			return app.mig.Switch(ctx, mode)
		})
	},
}

// confirmSwitch prompts for confirmation when stdin is a terminal.
// Non-interactive runs proceed without a prompt so scripted use keeps
// working.
func confirmSwitch(mode migrate.Mode) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}

	fmt.Printf("Switch project to %s networking? [y/N]: ", mode)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func init() {
	switchCmd.Flags().BoolVarP(&switchYes, "yes", "y", false, "Skip the confirmation prompt")
}
