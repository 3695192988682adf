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

// Package nav is the in-process router. The current route is persisted so a
// restarted session comes back on the same path.
package nav

import (
	"slices"

	"github.com/cloud-exit/workdesk/internal/kvstore"
	"github.com/cloud-exit/workdesk/internal/ui"
)

// RecordKey is the storage key of the persisted route.
const RecordKey = "ems_route"

// Navigator moves between routes.
type Navigator interface {
	Navigate(path string)
	CurrentPath() string
}

// Backer is implemented by navigators that keep a history.
type Backer interface {
	Back() bool
}

type routeRecord struct {
	Path    string   `json:"path"`
	History []string `json:"history,omitempty"`
}

// maxHistory bounds the persisted back stack.
const maxHistory = 32

// Router is a Navigator with a back stack.
type Router struct {
	rec     *kvstore.Record
	current string
	history []string
}

// NewRouter restores the persisted route from b, or starts at start when none
// is stored. A nil backend gives a session-only router.
func NewRouter(b kvstore.Backend, start string) *Router {
	r := &Router{rec: kvstore.NewRecord(b, RecordKey), current: start}
	var saved routeRecord
	if r.rec.Load(&saved) && saved.Path != "" {
		r.current = saved.Path
		r.history = saved.History
	}
	return r
}

// CurrentPath returns the current route.
func (r *Router) CurrentPath() string { return r.current }

// History returns the back stack, oldest first.
func (r *Router) History() []string { return slices.Clone(r.history) }

// Navigate pushes the current route and moves to path.
func (r *Router) Navigate(path string) {
	from := r.current
	if from != "" {
		r.history = append(r.history, from)
		if len(r.history) > maxHistory {
			r.history = r.history[len(r.history)-maxHistory:]
		}
	}
	r.current = path
	r.save()
	ui.Debugf("nav: %s -> %s", from, path)
}

// Back returns to the previous route. It reports false at the start of the
// history.
func (r *Router) Back() bool {
	if len(r.history) == 0 {
		return false
	}
	from := r.current
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.save()
	ui.Debugf("nav: back %s -> %s", from, r.current)
	return true
}

// Forget drops the persisted route. The in-memory route is kept.
func (r *Router) Forget() {
	r.history = nil
	r.rec.Clear()
}

func (r *Router) save() {
	r.rec.Save(routeRecord{Path: r.current, History: r.history})
}
