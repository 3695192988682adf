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

package steps

// Flags reports per-step completion. progress.Progress satisfies it.
type Flags interface {
	Completed(k Key) bool
}

// ResolveActiveStep returns the index of the step the wizard should treat as
// active. The path alone decides; completion flags only affect how cards
// render and whether the terminal step is enabled.
func ResolveActiveStep(r *Registry, currentPath string, _ Flags) int {
	return r.IndexForPath(currentPath)
}

// TargetPathForStep returns where to navigate to show step index.
func TargetPathForStep(r *Registry, index int) string {
	return r.PathForIndex(index)
}

// AllComplete reports whether every flagged step is complete.
func AllComplete(f Flags) bool {
	if f == nil {
		return false
	}
	for _, k := range CompletionKeys {
		if !f.Completed(k) {
			return false
		}
	}
	return true
}
