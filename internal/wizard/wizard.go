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

// Package wizard runs the workspace setup wizard: a controller that turns the
// current route and saved progress into step cards, and a terminal UI on top.
package wizard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/workdesk/internal/catalog"
	"github.com/cloud-exit/workdesk/internal/steps"
)

// Result is the outcome of a wizard session.
type Result struct {
	Finished    bool   // the terminal step ran
	Destination string // route chosen by the terminal step
	Path        string // route when the session ended
}

// Run executes the wizard TUI. Progress is saved as steps complete, so
// quitting early loses nothing.
func Run(ctrl *Controller, catalogs map[steps.Key]catalog.Fetcher) (*Result, error) {
	p := tea.NewProgram(NewModel(ctrl, catalogs), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	wm := finalModel.(Model)
	return &Result{
		Finished:    wm.Destination() != "",
		Destination: wm.Destination(),
		Path:        ctrl.CurrentPath(),
	}, nil
}
