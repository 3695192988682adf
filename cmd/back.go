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

var errNoHistory = errors.New("nothing to go back to")

var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Return to the previous setup route",
	Long:  "Go back one route, for example to reopen a step that is already complete.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openSession(false)
		defer s.close()
		return runBack(s)
	},
}

func runBack(s *session) error {
	if !s.controller().Back() {
		return errNoHistory
	}
	ui.Infof("Now at %s", s.router.CurrentPath())
	return nil
}

func init() {
	rootCmd.AddCommand(backCmd)
}
