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

// Package steps defines the ordered onboarding steps and resolves the active
// step from the current navigation path.
package steps

import "strings"

// Key identifies an onboarding step.
type Key string

// Step keys. Department, Designation and Shift carry completion flags;
// Complete is the terminal "all set" step and never does.
const (
	Department  Key = "department"
	Designation Key = "designation"
	Shift       Key = "shift"
	Complete    Key = "complete"
)

// CompletionKeys lists the steps whose completion gates the terminal step,
// in wizard order.
var CompletionKeys = []Key{Department, Designation, Shift}

// Definition describes one onboarding step. Only Key and Path affect
// behavior; the rest is display text.
type Definition struct {
	Key          Key
	Path         string
	Title        string
	Description  string
	CTA          string
	Illustration string
	Terminal     bool
}

// Registry is the fixed, ordered catalog of onboarding steps.
type Registry struct {
	steps []Definition
	index map[string]int
}

// NewRegistry builds a registry from defs. Order defines both display order
// and gating order.
func NewRegistry(defs []Definition) *Registry {
	r := &Registry{
		steps: make([]Definition, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	copy(r.steps, defs)
	for i, d := range r.steps {
		r.index[normalizePath(d.Path)] = i
	}
	return r
}

// Default returns the workspace setup wizard registry.
func Default() *Registry {
	return NewRegistry([]Definition{
		{
			Key:          Department,
			Path:         "/signup/department",
			Title:        "Setup Departments",
			Description:  "Departments help you organize your team based on roles or functions (e.g., HR, Marketing...)",
			CTA:          "Add Departments",
			Illustration: "department.png",
		},
		{
			Key:          Designation,
			Path:         "/signup/designation",
			Title:        "Setup Designations",
			Description:  "Designations define the titles or roles of individuals (e.g., Manager, Developer, Intern...)",
			CTA:          "Add Designations",
			Illustration: "designation.png",
		},
		{
			Key:          Shift,
			Path:         "/signup/shift",
			Title:        "Setup Shifts",
			Description:  "Shifts help you structure work hours (e.g., Day, Night, Rotational...)",
			CTA:          "Add Shifts",
			Illustration: "shift.png",
		},
		{
			Key:          Complete,
			Path:         "/signup/complete",
			Title:        "You're all set!",
			Description:  "Organization setup is complete. You can now start managing!",
			CTA:          "Go To Dashboard",
			Illustration: "allset.png",
			Terminal:     true,
		},
	})
}

// Len returns the number of steps.
func (r *Registry) Len() int { return len(r.steps) }

// At returns the step at index i. i must be in range.
func (r *Registry) At(i int) Definition { return r.steps[i] }

// Steps returns a copy of the ordered step list.
func (r *Registry) Steps() []Definition {
	out := make([]Definition, len(r.steps))
	copy(out, r.steps)
	return out
}

// IndexOf returns the index of the step with key k.
func (r *Registry) IndexOf(k Key) (int, bool) {
	for i, d := range r.steps {
		if d.Key == k {
			return i, true
		}
	}
	return 0, false
}

// Lookup returns the index of the step registered at path.
func (r *Registry) Lookup(path string) (int, bool) {
	i, ok := r.index[normalizePath(path)]
	return i, ok
}

// IndexForPath returns the step index for path. Unknown or malformed paths
// resolve to the first step.
func (r *Registry) IndexForPath(path string) int {
	if i, ok := r.Lookup(path); ok {
		return i
	}
	return 0
}

// PathForIndex returns the navigation target of step i, clamped to the
// registry bounds.
func (r *Registry) PathForIndex(i int) string {
	if len(r.steps) == 0 {
		return "/"
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.steps) {
		i = len(r.steps) - 1
	}
	return r.steps[i].Path
}

// normalizePath strips the query, fragment and trailing slashes.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}
