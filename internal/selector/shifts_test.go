// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package selector

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"09:00", "09:00", nil},
		{"9:05", "09:05", nil},
		{"23:59", "23:59", nil},
		{"00:00", "00:00", nil},
		{"9:30pm", "21:30", nil},
		{"12:15 AM", "00:15", nil},
		{"", "", ErrTimeRequired},
		{"  ", "", ErrTimeRequired},
		{"24:00", "", ErrInvalidTime},
		{"noon", "", ErrInvalidTime},
	}
	for _, tc := range tests {
		got, err := ParseTimeOfDay(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseTimeOfDay(%q) error = %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestShift_JSON(t *testing.T) {
	s := Shift{Name: "Night", In: 22 * 60, Out: 6 * 60}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"Night","in_time":"22:00","out_time":"06:00"}` {
		t.Errorf("Marshal = %s", data)
	}
	var back Shift
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Errorf("Unmarshal = %+v, want %+v", back, s)
	}
	if !back.Overnight() {
		t.Error("Overnight() = false for 22:00-06:00")
	}
}

func openShiftDialog(t *testing.T) (*ShiftDialog, *int) {
	t.Helper()
	calls := 0
	d := NewShiftDialog(func([]Shift) { calls++ })
	d.Open(nil)
	return d, &calls
}

func TestShiftDialog_EqualTimesRejected(t *testing.T) {
	d, _ := openShiftDialog(t)

	err := d.Add(ShiftInput{Name: "Day", InTime: "09:00", OutTime: "09:00"})
	if !errors.Is(err, ErrSameTimes) {
		t.Fatalf("Add = %v, want ErrSameTimes", err)
	}
	if n := len(d.Draft()); n != 0 {
		t.Errorf("draft length = %d, want 0", n)
	}
	if d.FieldErrors().OutTime == "" {
		t.Error("expected inline out-time error")
	}
}

func TestShiftDialog_MissingFields(t *testing.T) {
	d, _ := openShiftDialog(t)

	err := d.Add(ShiftInput{})
	for _, want := range []error{ErrEmptyName, ErrTimeRequired} {
		if !errors.Is(err, want) {
			t.Errorf("Add(empty) = %v, want it to include %v", err, want)
		}
	}
	fe := d.FieldErrors()
	if fe.Name == "" || fe.InTime == "" || fe.OutTime == "" {
		t.Errorf("FieldErrors() = %+v, want all fields flagged", fe)
	}
}

func TestShiftDialog_DuplicateNameInDraft(t *testing.T) {
	d, _ := openShiftDialog(t)

	if err := d.Add(ShiftInput{Name: "Day", InTime: "09:00", OutTime: "17:00"}); err != nil {
		t.Fatalf("Add(Day): %v", err)
	}
	err := d.Add(ShiftInput{Name: "day", InTime: "10:00", OutTime: "18:00"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Add(day) = %v, want ErrDuplicateName", err)
	}
	if n := len(d.Draft()); n != 1 {
		t.Errorf("draft length = %d, want 1", n)
	}
}

func TestShiftDialog_FailedAddKeepsDraft(t *testing.T) {
	d, _ := openShiftDialog(t)
	if err := d.Add(ShiftInput{Name: "Day", InTime: "09:00", OutTime: "17:00", Description: " office "}); err != nil {
		t.Fatal(err)
	}
	_ = d.Add(ShiftInput{Name: "Broken", InTime: "25:00", OutTime: "17:00"})

	draft := d.Draft()
	if len(draft) != 1 || draft[0].Name != "Day" || draft[0].Description != "office" {
		t.Errorf("Draft() = %+v", draft)
	}
	if d.FieldErrors().InTime == "" {
		t.Error("expected inline in-time error")
	}
}

func TestShiftDialog_OvernightAccepted(t *testing.T) {
	d, _ := openShiftDialog(t)
	if err := d.Add(ShiftInput{Name: "Night", InTime: "22:00", OutTime: "06:00"}); err != nil {
		t.Errorf("Add(Night) = %v", err)
	}
	if !d.FieldErrors().Empty() {
		t.Errorf("FieldErrors() = %+v after valid add", d.FieldErrors())
	}
}

func TestShiftDialog_SaveEmptyRejected(t *testing.T) {
	d, calls := openShiftDialog(t)

	if _, err := d.Save(); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("Save() = %v, want ErrEmptySelection", err)
	}
	if *calls != 0 {
		t.Errorf("OnSave called %d times", *calls)
	}
	if !d.IsOpen() || d.Error() == "" {
		t.Error("rejected Save should keep dialog open with an inline error")
	}
}

func TestShiftDialog_SaveAndCancel(t *testing.T) {
	d, calls := openShiftDialog(t)
	if err := d.Add(ShiftInput{Name: "Day", InTime: "09:00", OutTime: "17:00"}); err != nil {
		t.Fatal(err)
	}
	saved, err := d.Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved) != 1 || *calls != 1 {
		t.Errorf("Save() = %v, calls = %d", saved, *calls)
	}

	d.Open(saved)
	if err := d.Add(ShiftInput{Name: "Night", InTime: "22:00", OutTime: "06:00"}); err != nil {
		t.Fatal(err)
	}
	d.Remove("DAY")
	d.Cancel()
	d.Open(saved)
	if got := d.Draft(); len(got) != 1 || got[0].Name != "Day" {
		t.Errorf("Draft() after cancel+reopen = %+v", got)
	}
}

func TestShiftDialog_AddWhenClosed(t *testing.T) {
	d := NewShiftDialog(nil)
	if err := d.Add(ShiftInput{Name: "Day", InTime: "09:00", OutTime: "17:00"}); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Add on closed dialog = %v, want ErrNotOpen", err)
	}
}

func TestShiftDialog_RemoveWhenClosed(t *testing.T) {
	d := NewShiftDialog(nil)
	if d.Remove("Day") {
		t.Error("Remove on never-opened dialog = true")
	}
	d.Open([]Shift{{Name: "Day", In: 9 * 60, Out: 17 * 60}})
	d.Cancel()
	if d.Remove("Day") {
		t.Error("Remove after Cancel = true")
	}
}
