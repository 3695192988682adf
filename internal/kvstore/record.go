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

package kvstore

import (
	"encoding/json"
	"errors"

	"github.com/cloud-exit/workdesk/internal/ui"
)

// Backend is the part of Store that records need.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Record is a JSON value kept under a single key. Access is best-effort: the
// first backend failure takes the record offline for the rest of the session
// and callers carry on with their in-memory copy.
type Record struct {
	backend Backend
	key     string
	offline bool
}

// NewRecord binds key on b. A nil backend yields an offline record.
func NewRecord(b Backend, key string) *Record {
	return &Record{backend: b, key: key, offline: b == nil}
}

// Offline reports whether the record has stopped using its backend.
func (r *Record) Offline() bool { return r.offline }

// Load decodes the stored value into v and reports whether one was found.
// An undecodable value counts as missing; v may then be partially filled.
func (r *Record) Load(v any) bool {
	if r.offline {
		return false
	}
	data, err := r.backend.Get(r.key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		r.goOffline("read", err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		ui.Debugf("kvstore: ignoring unreadable %s: %v", r.key, err)
		return false
	}
	return true
}

// Save encodes v and writes it whole.
func (r *Record) Save(v any) {
	if r.offline {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		ui.Debugf("kvstore: encode %s: %v", r.key, err)
		return
	}
	if err := r.backend.Set(r.key, data); err != nil {
		r.goOffline("write", err)
	}
}

// Clear removes the stored value.
func (r *Record) Clear() {
	if r.offline {
		return
	}
	if err := r.backend.Delete(r.key); err != nil {
		r.goOffline("delete", err)
	}
}

func (r *Record) goOffline(op string, err error) {
	r.offline = true
	ui.Debugf("kvstore: %s %s failed, keeping it in memory for this session: %v", op, r.key, err)
}
