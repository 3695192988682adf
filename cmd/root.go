// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"os"

	"github.com/cloud-exit/workdesk/internal/config"
	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "0.4.0"

// ephemeral keeps onboarding state in memory for this run.
var ephemeral bool

// skipDefaultsCommands do not write a default config on first run.
var skipDefaultsCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
	"status":     true,
}

var rootCmd = &cobra.Command{
	Use:   "workdesk",
	Short: "Workspace onboarding",
	Long:  "Workdesk – create a workspace and set up its departments, designations and shifts",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v

		if !config.ConfigExists() && !skipDefaultsCommands[cmd.Name()] {
			ui.Debug("No configuration found. Writing defaults.")
			if err := config.WriteDefaults(); err != nil {
				return fmt.Errorf("writing defaults: %w", err)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup("")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("workdesk version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep onboarding state in memory for this run only")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("workdesk version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	config.EnsureDirs()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
