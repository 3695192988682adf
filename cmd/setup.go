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

	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/cloud-exit/workdesk/internal/wizard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the workspace setup wizard",
	Long: "Interactive wizard to set up departments, designations and shifts.\n" +
		"Progress is saved after every step; run it again to continue.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		return runSetup(path)
	},
}

func runSetup(path string) error {
	s := openSession(false)
	defer s.close()

	if path != "" {
		s.router.Navigate(path)
	}
	ctrl := s.controller()

	// Non-interactive terminal: show where onboarding stands instead.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Warn("Non-interactive terminal detected. Showing setup status.")
		printStatus(os.Stdout, s, ctrl)
		ui.Info("Use 'workdesk select' and 'workdesk finish' to continue without a terminal UI.")
		return nil
	}

	result, err := wizard.Run(ctrl, s.catalogs())
	if err != nil {
		return err
	}

	if result.Finished {
		ui.Success("Workspace setup complete!")
		fmt.Printf("Continue at %s\n", result.Destination)
		return nil
	}
	ui.Info("Progress saved. Run 'workdesk setup' to continue.")
	return nil
}

func init() {
	setupCmd.Flags().String("path", "", "Open the wizard at this route (e.g. /signup/shift)")
	rootCmd.AddCommand(setupCmd)
}
