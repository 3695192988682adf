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

package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cloud-exit/workdesk/internal/nav"
	"github.com/cloud-exit/workdesk/internal/progress"
	"github.com/cloud-exit/workdesk/internal/selector"
	"github.com/cloud-exit/workdesk/internal/signup"
	"github.com/cloud-exit/workdesk/internal/steps"
	"github.com/cloud-exit/workdesk/internal/ui"
)

// Status is how a step card is shown.
type Status int

const (
	Locked Status = iota
	Active
	Done
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Done:
		return "done"
	}
	return "locked"
}

// Card is the rendered state of one wizard step.
type Card struct {
	Def        steps.Definition
	Index      int
	Status     Status
	Actionable bool
}

// Identity is the signed-in user as far as the wizard cares.
type Identity struct {
	DisplayName   string
	Authenticated bool
}

// IdentityFrom derives the identity from the signup draft. A draft with an
// email and workspace counts as a signed-in account.
func IdentityFrom(d signup.Data) Identity {
	return Identity{
		DisplayName:   strings.TrimSpace(d.Name),
		Authenticated: d.Email != "" && d.Workspace != "",
	}
}

// Routes are the destinations of the terminal step.
type Routes struct {
	Dashboard string
	Login     string
}

// Controller drives the setup wizard: it derives the cards from the current
// route and the progress record, and turns dialog saves into step transitions.
type Controller struct {
	reg    *steps.Registry
	store  *progress.Store
	nav    nav.Navigator
	ident  Identity
	routes Routes

	departments  []string
	designations []string
	shifts       []selector.Shift
}

// NewController seeds the local selections from the persisted record.
func NewController(reg *steps.Registry, store *progress.Store, n nav.Navigator, ident Identity, routes Routes) *Controller {
	p := store.Get()
	return &Controller{
		reg:          reg,
		store:        store,
		nav:          n,
		ident:        ident,
		routes:       routes,
		departments:  p.Selections.Departments,
		designations: p.Selections.Designations,
		shifts:       p.Selections.Shifts,
	}
}

// Registry returns the step registry.
func (c *Controller) Registry() *steps.Registry { return c.reg }

// CurrentPath returns the route the wizard is rendering.
func (c *Controller) CurrentPath() string { return c.nav.CurrentPath() }

// ActiveIndex resolves the current route to a step index.
func (c *Controller) ActiveIndex() int {
	return steps.ResolveActiveStep(c.reg, c.nav.CurrentPath(), c.store)
}

// Cards returns one card per registry step. The terminal card is actionable
// only when every completion flag is set, whatever the route.
func (c *Controller) Cards() []Card {
	active := c.ActiveIndex()
	allDone := steps.AllComplete(c.store)
	cards := make([]Card, c.reg.Len())
	for i := range cards {
		def := c.reg.At(i)
		card := Card{Def: def, Index: i}
		switch {
		case def.Terminal:
			card.Actionable = allDone
			if allDone {
				card.Status = Active
			}
		case c.store.Completed(def.Key):
			card.Status = Done
			card.Actionable = i == active
		case i == active:
			card.Status = Active
			card.Actionable = true
		}
		cards[i] = card
	}
	return cards
}

// Activate reports whether the dialog of step index may open.
func (c *Controller) Activate(index int) (steps.Definition, bool) {
	if index < 0 || index >= c.reg.Len() {
		return steps.Definition{}, false
	}
	card := c.Cards()[index]
	if !card.Actionable || card.Def.Terminal {
		return steps.Definition{}, false
	}
	return card.Def, true
}

// SaveNames completes a department or designation step with names and moves
// to the next step. An empty selection is rejected.
func (c *Controller) SaveNames(key steps.Key, names []string) bool {
	if len(names) == 0 {
		return false
	}
	switch key {
	case steps.Department:
		c.departments = slices.Clone(names)
	case steps.Designation:
		c.designations = slices.Clone(names)
	default:
		return false
	}
	c.store.SetNames(key, names)
	return c.complete(key)
}

// SaveShifts completes the shift step and moves to the next step. An empty
// list is rejected.
func (c *Controller) SaveShifts(shifts []selector.Shift) bool {
	if len(shifts) == 0 {
		return false
	}
	c.shifts = slices.Clone(shifts)
	c.store.SetShifts(shifts)
	return c.complete(steps.Shift)
}

func (c *Controller) complete(key steps.Key) bool {
	idx, ok := c.reg.IndexOf(key)
	if !ok {
		return false
	}
	c.store.SetStepComplete(key, true)
	next := steps.TargetPathForStep(c.reg, idx+1)
	ui.Debugf("wizard: %s complete, continuing at %s", key, next)
	c.nav.Navigate(next)
	return true
}

// Back returns to the previous route when the navigator keeps a history,
// which is how a completed step is reopened. It reports false when there is
// nothing to go back to.
func (c *Controller) Back() bool {
	b, ok := c.nav.(nav.Backer)
	if !ok {
		return false
	}
	return b.Back()
}

// Finish runs the terminal action. It navigates to the dashboard for a
// signed-in user and to the login page otherwise, and returns the route. It
// does nothing while any step is incomplete.
func (c *Controller) Finish() (string, bool) {
	if !steps.AllComplete(c.store) {
		return "", false
	}
	dest := c.routes.Login
	if c.ident.Authenticated {
		dest = c.routes.Dashboard
	}
	c.nav.Navigate(dest)
	return dest, true
}

// Greeting returns the welcome line shown above the cards.
func (c *Controller) Greeting() string {
	name := c.ident.DisplayName
	if name == "" {
		name = "Admin"
	}
	return fmt.Sprintf("Hi %s !", name)
}

// WorkspaceName returns the name of the workspace being set up.
func (c *Controller) WorkspaceName() string {
	return c.store.Get().WorkspaceName
}

// DepartmentSeed returns the last saved departments.
func (c *Controller) DepartmentSeed() []string { return slices.Clone(c.departments) }

// DesignationSeed returns the last saved designations.
func (c *Controller) DesignationSeed() []string { return slices.Clone(c.designations) }

// ShiftSeed returns the last saved shifts.
func (c *Controller) ShiftSeed() []selector.Shift { return slices.Clone(c.shifts) }

// NameDialog returns a dialog for a department or designation step whose
// Save completes the step.
func (c *Controller) NameDialog(key steps.Key) *selector.NameDialog {
	return selector.NewNameDialog(string(key), func(names []string) {
		c.SaveNames(key, names)
	})
}

// OpenNameDialog returns a NameDialog already opened with the step's seed.
func (c *Controller) OpenNameDialog(key steps.Key) *selector.NameDialog {
	d := c.NameDialog(key)
	switch key {
	case steps.Department:
		d.Open(c.DepartmentSeed())
	case steps.Designation:
		d.Open(c.DesignationSeed())
	}
	return d
}

// OpenShiftDialog returns a shift dialog opened with the saved shifts.
func (c *Controller) OpenShiftDialog() *selector.ShiftDialog {
	d := selector.NewShiftDialog(func(shifts []selector.Shift) {
		c.SaveShifts(shifts)
	})
	d.Open(c.ShiftSeed())
	return d
}

// StepperLabels are the stages of the whole signup flow.
var StepperLabels = []string{
	"Email Verification",
	"Workspace Setup",
	"Department Setup",
	"Designation Setup",
	"Shift Setup",
	"Complete",
}

// StepperIndex returns the position of the active wizard step in
// StepperLabels.
func (c *Controller) StepperIndex() int {
	return 2 + c.ActiveIndex()
}
