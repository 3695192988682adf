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

package selector

import (
	"errors"
	"fmt"
	"strings"
)

// Shift is a named working time range. Out may be earlier than In for
// shifts that cross midnight, but never equal to it.
type Shift struct {
	Name        string    `json:"name"`
	In          TimeOfDay `json:"in_time"`
	Out         TimeOfDay `json:"out_time"`
	Description string    `json:"description,omitempty"`
}

// Overnight reports whether the shift ends on the following day.
func (s Shift) Overnight() bool { return s.Out < s.In }

// String formats the shift as "Name (HH:MM-HH:MM)".
func (s Shift) String() string {
	return fmt.Sprintf("%s (%s-%s)", s.Name, s.In, s.Out)
}

// ShiftInput is the raw form for a new shift.
type ShiftInput struct {
	Name        string
	InTime      string
	OutTime     string
	Description string
}

// ShiftErrors holds the inline error of each shift form field. Empty strings
// mean the field is valid.
type ShiftErrors struct {
	Name    string
	InTime  string
	OutTime string
}

// Empty reports whether no field has an error.
func (e ShiftErrors) Empty() bool {
	return e.Name == "" && e.InTime == "" && e.OutTime == ""
}

// ShiftDialog collects shift definitions.
type ShiftDialog struct {
	// OnSave receives the finalized shifts. Called at most once per Save.
	OnSave func([]Shift)

	draft   []Shift
	open    bool
	fields  ShiftErrors
	saveErr string
}

// NewShiftDialog returns a closed shift dialog.
func NewShiftDialog(onSave func([]Shift)) *ShiftDialog {
	return &ShiftDialog{OnSave: onSave}
}

// Open starts a new draft seeded from the owner's last saved shifts.
func (d *ShiftDialog) Open(seed []Shift) {
	d.draft = append([]Shift(nil), seed...)
	d.fields = ShiftErrors{}
	d.saveErr = ""
	d.open = true
}

// IsOpen reports whether the dialog is showing.
func (d *ShiftDialog) IsOpen() bool { return d.open }

// Cancel closes the dialog and discards the draft.
func (d *ShiftDialog) Cancel() {
	d.open = false
	d.draft = nil
	d.fields = ShiftErrors{}
	d.saveErr = ""
}

// Draft returns a copy of the draft shifts.
func (d *ShiftDialog) Draft() []Shift {
	return append([]Shift(nil), d.draft...)
}

// FieldErrors returns the inline errors of the last Add.
func (d *ShiftDialog) FieldErrors() ShiftErrors { return d.fields }

// Error returns the inline dialog-level error, if any.
func (d *ShiftDialog) Error() string { return d.saveErr }

// Validate checks in against the current draft without modifying it.
func (d *ShiftDialog) Validate(in ShiftInput) (Shift, ShiftErrors, error) {
	var (
		fe   ShiftErrors
		errs []error
		s    = Shift{
			Name:        strings.TrimSpace(in.Name),
			Description: strings.TrimSpace(in.Description),
		}
	)

	switch {
	case s.Name == "":
		fe.Name = "Shift name is required."
		errs = append(errs, ErrEmptyName)
	case d.hasName(s.Name):
		fe.Name = "A shift with this name already exists."
		errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateName, s.Name))
	}

	var inErr, outErr error
	s.In, inErr = ParseTimeOfDay(in.InTime)
	if inErr != nil {
		fe.InTime = timeMessage("In-time", inErr)
		errs = append(errs, inErr)
	}
	s.Out, outErr = ParseTimeOfDay(in.OutTime)
	if outErr != nil {
		fe.OutTime = timeMessage("Out-time", outErr)
		errs = append(errs, outErr)
	}
	if inErr == nil && outErr == nil && s.In == s.Out {
		fe.OutTime = "Out-time must be different from in-time."
		errs = append(errs, ErrSameTimes)
	}

	return s, fe, errors.Join(errs...)
}

// Add validates in and appends it to the draft. On failure the draft is
// unchanged and FieldErrors describes each problem.
func (d *ShiftDialog) Add(in ShiftInput) error {
	if !d.open {
		return ErrNotOpen
	}
	s, fe, err := d.Validate(in)
	d.fields = fe
	if err != nil {
		return err
	}
	d.draft = append(d.draft, s)
	d.saveErr = ""
	return nil
}

// Remove drops the shift called name from the draft. It reports false when
// the dialog is closed.
func (d *ShiftDialog) Remove(name string) bool {
	if !d.open {
		return false
	}
	for i, s := range d.draft {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			d.draft = append(d.draft[:i], d.draft[i+1:]...)
			return true
		}
	}
	return false
}

// Save hands a non-empty draft to OnSave and closes the dialog.
func (d *ShiftDialog) Save() ([]Shift, error) {
	if !d.open {
		return nil, ErrNotOpen
	}
	if len(d.draft) == 0 {
		d.saveErr = "Please add at least one shift."
		return nil, ErrEmptySelection
	}
	saved := d.Draft()
	d.open = false
	d.draft = nil
	d.fields = ShiftErrors{}
	d.saveErr = ""
	if d.OnSave != nil {
		d.OnSave(append([]Shift(nil), saved...))
	}
	return saved, nil
}

func (d *ShiftDialog) hasName(name string) bool {
	for _, s := range d.draft {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func timeMessage(field string, err error) string {
	if errors.Is(err, ErrTimeRequired) {
		return field + " is required."
	}
	return field + " must be a time like 09:00."
}
