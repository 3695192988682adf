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

// Package selector implements the pick-or-create dialogs of the setup wizard:
// a name dialog for departments and designations and a shift dialog. Dialogs
// hold a draft selection and only hand it to their owner on a valid Save.
package selector

import "errors"

// Validation errors. They stay inside the dialog and are shown inline.
var (
	ErrNotOpen        = errors.New("dialog is not open")
	ErrEmptySelection = errors.New("selection is empty")
	ErrEmptyName      = errors.New("name is required")
	ErrDuplicateName  = errors.New("name already exists")
	ErrTimeRequired   = errors.New("time is required")
	ErrInvalidTime    = errors.New("time must be HH:MM")
	ErrSameTimes      = errors.New("in-time and out-time must differ")
)
