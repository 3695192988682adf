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
	"errors"

	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/spf13/cobra"
)

var errSetupIncomplete = errors.New("complete every setup step first (see 'workdesk status')")

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Leave the setup wizard once every step is complete",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openSession(false)
		defer s.close()
		return runFinish(s)
	},
}

func runFinish(s *session) error {
	dest, ok := s.controller().Finish()
	if !ok {
		return errSetupIncomplete
	}
	ui.Successf("Workspace setup complete. Continue at %s", dest)
	return nil
}

func newResetCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start workspace setup over",
		Long:  "Clear setup progress and selections. With --all the signup details are cleared too.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := openSession(false)
			defer s.close()
			runReset(s, all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Also clear the signup details")
	return cmd
}

func runReset(s *session, all bool) {
	s.progress.Reset()
	s.router.Forget()
	if all {
		s.draft.Reset()
		ui.Success("Setup progress and signup details cleared")
		return
	}
	ui.Success("Setup progress cleared")
}

func init() {
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(newResetCmd())
}
