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

// Package progress keeps the durable onboarding progress record: which setup
// steps are complete, the workspace name and the last saved selections.
package progress

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/cloud-exit/workdesk/internal/kvstore"
	"github.com/cloud-exit/workdesk/internal/selector"
	"github.com/cloud-exit/workdesk/internal/steps"
	"github.com/cloud-exit/workdesk/internal/ui"
)

// RecordKey is the storage key of the progress record.
const RecordKey = "ems_setup_progress"

const recordVersion = 1

// Selections are the last saved dialog results, used to seed reopened dialogs.
type Selections struct {
	Departments  []string         `json:"departments,omitempty"`
	Designations []string         `json:"designations,omitempty"`
	Shifts       []selector.Shift `json:"shifts,omitempty"`
}

// Progress is the persisted onboarding state.
type Progress struct {
	Version       int                `json:"version"`
	RunID         string             `json:"run_id"`
	WorkspaceName string             `json:"workspace_name"`
	Steps         map[steps.Key]bool `json:"steps"`
	Selections    Selections         `json:"selections"`
}

// Completed reports whether the step flag for k is set.
func (p Progress) Completed(k steps.Key) bool { return p.Steps[k] }

// Names returns the saved name selection for a department or designation step.
func (p Progress) Names(k steps.Key) []string {
	switch k {
	case steps.Department:
		return slices.Clone(p.Selections.Departments)
	case steps.Designation:
		return slices.Clone(p.Selections.Designations)
	}
	return nil
}

func (p Progress) clone() Progress {
	c := p
	c.Steps = maps.Clone(p.Steps)
	if c.Steps == nil {
		c.Steps = make(map[steps.Key]bool)
	}
	c.Selections = Selections{
		Departments:  slices.Clone(p.Selections.Departments),
		Designations: slices.Clone(p.Selections.Designations),
		Shifts:       slices.Clone(p.Selections.Shifts),
	}
	return c
}

func defaultProgress() Progress {
	return Progress{
		Version: recordVersion,
		RunID:   uuid.NewString(),
		Steps:   make(map[steps.Key]bool),
	}
}

// Store owns the progress record. All mutations write the whole record back
// before returning. Storage failures never reach callers.
type Store struct {
	rec  *kvstore.Record
	data Progress
}

// Open loads the record from b. A nil backend gives a session-only store.
func Open(b kvstore.Backend) *Store {
	s := &Store{rec: kvstore.NewRecord(b, RecordKey)}
	var p Progress
	if s.rec.Load(&p) {
		s.data = p.clone()
		if s.data.Version == 0 {
			s.data.Version = recordVersion
		}
		if s.data.RunID == "" {
			s.data.RunID = uuid.NewString()
		}
	} else {
		s.data = defaultProgress()
	}
	ui.Debugf("progress: loaded run %s (persistent=%t)", s.data.RunID, s.Persistent())
	return s
}

// Persistent reports whether writes still reach durable storage.
func (s *Store) Persistent() bool { return !s.rec.Offline() }

// Get returns a copy of the current record.
func (s *Store) Get() Progress { return s.data.clone() }

// Completed reports whether the step flag for k is set.
func (s *Store) Completed(k steps.Key) bool { return s.data.Steps[k] }

// SetWorkspaceName records the workspace name.
func (s *Store) SetWorkspaceName(name string) {
	s.data.WorkspaceName = name
	s.save()
}

// SetStepComplete sets or clears the flag for k.
func (s *Store) SetStepComplete(k steps.Key, complete bool) {
	if complete {
		s.data.Steps[k] = true
	} else {
		delete(s.data.Steps, k)
	}
	s.save()
}

// SetNames records the saved name selection for a department or designation
// step. Other keys are ignored.
func (s *Store) SetNames(k steps.Key, names []string) {
	switch k {
	case steps.Department:
		s.data.Selections.Departments = slices.Clone(names)
	case steps.Designation:
		s.data.Selections.Designations = slices.Clone(names)
	default:
		return
	}
	s.save()
}

// SetShifts records the saved shifts.
func (s *Store) SetShifts(shifts []selector.Shift) {
	s.data.Selections.Shifts = slices.Clone(shifts)
	s.save()
}

// Reset clears flags, name and selections and starts a new run.
func (s *Store) Reset() {
	s.data = defaultProgress()
	s.save()
}

func (s *Store) save() {
	s.rec.Save(s.data)
}
