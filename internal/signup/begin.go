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

package signup

import (
	"github.com/cloud-exit/workdesk/internal/nav"
	"github.com/cloud-exit/workdesk/internal/progress"
	"github.com/cloud-exit/workdesk/internal/steps"
	"github.com/cloud-exit/workdesk/internal/ui"
)

// Onboarding wires the signup form to the setup wizard.
type Onboarding struct {
	Progress *progress.Store
	Draft    *Draft
	Nav      nav.Navigator
	Steps    *steps.Registry
}

// Begin validates f. When it is valid, Begin starts a fresh setup run for the
// new workspace and navigates to the first wizard step. Nothing changes when
// f is invalid.
func (o Onboarding) Begin(f Form) FormErrors {
	fe := Validate(f)
	if !fe.OK() {
		return fe
	}

	o.Progress.Reset()
	o.Progress.SetWorkspaceName(f.Workspace)
	o.Draft.Reset()
	o.Draft.SetData(FromForm(f))
	ui.Debugf("signup: workspace %q created by %s", f.Workspace, f.Email)

	o.Nav.Navigate(steps.TargetPathForStep(o.Steps, 0))
	return fe
}
