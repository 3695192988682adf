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
	"io"
	"os"
	"strings"

	"github.com/cloud-exit/workdesk/internal/steps"
	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/cloud-exit/workdesk/internal/wizard"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show onboarding progress",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSession(true)
		defer s.close()
		printStatus(os.Stdout, s, s.controller())
	},
}

func printStatus(w io.Writer, s *session, ctrl *wizard.Controller) {
	p := s.progress.Get()

	ws := p.WorkspaceName
	if ws == "" {
		ws = "(none)"
	}
	fmt.Fprintf(w, "%s\n\n", ctrl.Greeting())
	fmt.Fprintf(w, "  %sWorkspace:%s %s\n", ui.Bold, ui.NC, ws)
	fmt.Fprintf(w, "  %sRoute:%s     %s\n", ui.Bold, ui.NC, ctrl.CurrentPath())
	if h := s.router.History(); len(h) > 0 {
		fmt.Fprintf(w, "  %sPrevious:%s  %s  (workdesk back)\n", ui.Bold, ui.NC, h[len(h)-1])
	}
	fmt.Fprintf(w, "  %sStage:%s     %s\n\n", ui.Bold, ui.NC, wizard.StepperLabels[ctrl.StepperIndex()])

	for _, card := range ctrl.Cards() {
		marker := "[ ]"
		color := ui.Dim
		switch card.Status {
		case wizard.Done:
			marker, color = "[x]", ui.Green
		case wizard.Active:
			marker, color = "[>]", ui.Cyan
		}
		line := fmt.Sprintf("%s %d. %s", marker, card.Index+1, card.Def.Title)
		if card.Actionable {
			line += "  (" + card.Def.CTA + ")"
		}
		fmt.Fprintf(w, "  %s%s%s\n", color, line, ui.NC)
		if detail := selectionSummary(s, card); detail != "" {
			fmt.Fprintf(w, "        %s%s%s\n", ui.Dim, detail, ui.NC)
		}
	}

	switch {
	case s.kv == nil && s.readOnly:
		fmt.Fprintf(w, "\n  %sNo onboarding state yet.%s\n", ui.Dim, ui.NC)
	case !s.progress.Persistent():
		fmt.Fprintf(w, "\n  %sState is not being saved in this run.%s\n", ui.Yellow, ui.NC)
	}
}

func selectionSummary(s *session, card wizard.Card) string {
	p := s.progress.Get()
	if names := p.Names(card.Def.Key); len(names) > 0 {
		return strings.Join(names, ", ")
	}
	if card.Def.Key == steps.Shift && len(p.Selections.Shifts) > 0 {
		parts := make([]string, len(p.Selections.Shifts))
		for i, sh := range p.Selections.Shifts {
			parts[i] = sh.String()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
