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
	"github.com/cloud-exit/workdesk/internal/kvstore"
)

// RecordKey is the storage key of the signup draft.
const RecordKey = "ems_signup"

// Data is the persisted part of the signup form. Passwords are never stored.
type Data struct {
	Email     string `json:"email,omitempty"`
	Workspace string `json:"workspace,omitempty"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role,omitempty"`
}

// FromForm copies the storable fields of f.
func FromForm(f Form) Data {
	return Data{Email: f.Email, Workspace: f.Workspace, Name: f.Name, Role: f.Role}
}

// Draft keeps the signup data across restarts.
type Draft struct {
	rec  *kvstore.Record
	data Data
}

// OpenDraft loads the draft from b. A nil backend gives a session-only draft.
func OpenDraft(b kvstore.Backend) *Draft {
	d := &Draft{rec: kvstore.NewRecord(b, RecordKey)}
	var data Data
	if d.rec.Load(&data) {
		d.data = data
	}
	return d
}

// Get returns the current data.
func (d *Draft) Get() Data { return d.data }

// SetData merges the non-empty fields of patch into the draft.
func (d *Draft) SetData(patch Data) {
	if patch.Email != "" {
		d.data.Email = patch.Email
	}
	if patch.Workspace != "" {
		d.data.Workspace = patch.Workspace
	}
	if patch.Name != "" {
		d.data.Name = patch.Name
	}
	if patch.Role != "" {
		d.data.Role = patch.Role
	}
	d.rec.Save(d.data)
}

// Reset clears the draft.
func (d *Draft) Reset() {
	d.data = Data{}
	d.rec.Clear()
}
