// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package progress

import (
	"errors"
	"slices"
	"testing"

	"github.com/cloud-exit/workdesk/internal/kvstore"
	"github.com/cloud-exit/workdesk/internal/selector"
	"github.com/cloud-exit/workdesk/internal/steps"
)

func openTestKV(t *testing.T) *kvstore.Store {
	t.Helper()
	kv, err := kvstore.Open(kvstore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

// brokenBackend fails every operation, like a full or locked disk.
type brokenBackend struct{ calls int }

var errDiskFull = errors.New("disk full")

func (b *brokenBackend) Get(string) ([]byte, error) {
	b.calls++
	return nil, kvstore.ErrNotFound
}

func (b *brokenBackend) Set(string, []byte) error {
	b.calls++
	return errDiskFull
}

func (b *brokenBackend) Delete(string) error {
	b.calls++
	return errDiskFull
}

func TestOpen_FreshStoreHasDefaults(t *testing.T) {
	s := Open(openTestKV(t))
	p := s.Get()

	if p.WorkspaceName != "" {
		t.Errorf("WorkspaceName = %q, want empty", p.WorkspaceName)
	}
	for _, k := range steps.CompletionKeys {
		if p.Completed(k) {
			t.Errorf("Completed(%s) = true on fresh store", k)
		}
	}
	if p.RunID == "" || p.Version != recordVersion {
		t.Errorf("RunID = %q, Version = %d", p.RunID, p.Version)
	}
	if !s.Persistent() {
		t.Error("Persistent() = false on healthy store")
	}
}

func TestSetStepComplete_Idempotent(t *testing.T) {
	s := Open(openTestKV(t))

	s.SetStepComplete(steps.Department, true)
	once := s.Get()
	s.SetStepComplete(steps.Department, true)
	twice := s.Get()

	if !twice.Completed(steps.Department) {
		t.Fatal("department flag not set")
	}
	if len(once.Steps) != len(twice.Steps) || once.RunID != twice.RunID {
		t.Errorf("second call changed record: %+v -> %+v", once, twice)
	}
	if twice.Completed(steps.Designation) || twice.Completed(steps.Shift) {
		t.Error("unrelated flags changed")
	}
}

func TestSetStepComplete_Clear(t *testing.T) {
	s := Open(openTestKV(t))
	s.SetStepComplete(steps.Shift, true)
	s.SetStepComplete(steps.Shift, false)
	if s.Completed(steps.Shift) {
		t.Error("shift flag still set after clearing")
	}
}

func TestRoundTrip_AcrossReopen(t *testing.T) {
	kv := openTestKV(t)
	s := Open(kv)
	s.SetWorkspaceName("Acme")
	s.SetStepComplete(steps.Department, true)
	s.SetNames(steps.Department, []string{"Engineering", "Sales"})
	s.SetShifts([]selector.Shift{{Name: "Day", In: 9 * 60, Out: 17 * 60}})

	reopened := Open(kv).Get()
	if reopened.WorkspaceName != "Acme" {
		t.Errorf("WorkspaceName = %q, want Acme", reopened.WorkspaceName)
	}
	if !reopened.Completed(steps.Department) {
		t.Error("department flag lost across reopen")
	}
	if reopened.Completed(steps.Designation) || reopened.Completed(steps.Shift) {
		t.Error("unexpected flags after reopen")
	}
	if got := reopened.Names(steps.Department); !slices.Equal(got, []string{"Engineering", "Sales"}) {
		t.Errorf("Names(department) = %v", got)
	}
	if len(reopened.Selections.Shifts) != 1 || reopened.Selections.Shifts[0].Name != "Day" {
		t.Errorf("Shifts = %+v", reopened.Selections.Shifts)
	}
	if reopened.RunID != s.Get().RunID {
		t.Error("run ID changed across reopen")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := Open(openTestKV(t))
	s.SetNames(steps.Designation, []string{"Intern"})

	p := s.Get()
	p.Steps[steps.Shift] = true
	p.Selections.Designations[0] = "Manager"

	if s.Completed(steps.Shift) {
		t.Error("mutating Get() result changed the store flags")
	}
	if got := s.Get().Names(steps.Designation); got[0] != "Intern" {
		t.Errorf("mutating Get() result changed selections: %v", got)
	}
}

func TestSetNames_IgnoresOtherKeys(t *testing.T) {
	s := Open(openTestKV(t))
	s.SetNames(steps.Shift, []string{"Day"})
	if got := s.Get().Names(steps.Shift); got != nil {
		t.Errorf("Names(shift) = %v, want nil", got)
	}
}

func TestReset(t *testing.T) {
	kv := openTestKV(t)
	s := Open(kv)
	s.SetWorkspaceName("Acme")
	for _, k := range steps.CompletionKeys {
		s.SetStepComplete(k, true)
	}
	s.SetNames(steps.Department, []string{"Sales"})
	before := s.Get().RunID

	s.Reset()

	p := Open(kv).Get()
	if p.WorkspaceName != "" || len(p.Steps) != 0 || len(p.Selections.Departments) != 0 {
		t.Errorf("record after Reset = %+v", p)
	}
	if p.RunID == before {
		t.Error("Reset kept the old run ID")
	}
}

func TestFailingBackend_DegradesToMemory(t *testing.T) {
	b := &brokenBackend{}
	s := Open(b)

	s.SetWorkspaceName("Acme")
	s.SetStepComplete(steps.Department, true)
	s.SetStepComplete(steps.Designation, true)

	if s.Persistent() {
		t.Error("Persistent() = true after failed write")
	}
	p := s.Get()
	if p.WorkspaceName != "Acme" || !p.Completed(steps.Department) || !p.Completed(steps.Designation) {
		t.Errorf("in-memory record = %+v", p)
	}
	// One read at open and one failed write, then nothing.
	if b.calls != 2 {
		t.Errorf("backend calls = %d, want 2", b.calls)
	}
}

func TestNilBackend(t *testing.T) {
	s := Open(nil)
	s.SetStepComplete(steps.Shift, true)
	if !s.Completed(steps.Shift) || s.Persistent() {
		t.Errorf("nil backend store: completed=%t persistent=%t", s.Completed(steps.Shift), s.Persistent())
	}
}

func TestOpen_CorruptRecordFallsBackToDefaults(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set(RecordKey, []byte(`{"steps":`)); err != nil {
		t.Fatal(err)
	}
	s := Open(kv)
	if s.Completed(steps.Department) {
		t.Error("corrupt record produced a set flag")
	}
	s.SetStepComplete(steps.Department, true)
	if !Open(kv).Completed(steps.Department) {
		t.Error("write after corrupt read was not persisted")
	}
}

func TestOpen_UnknownFieldsAndMissingVersion(t *testing.T) {
	kv := openTestKV(t)
	raw := `{"workspace_name":"Acme","steps":{"department":true},"theme":"dark"}`
	if err := kv.Set(RecordKey, []byte(raw)); err != nil {
		t.Fatal(err)
	}
	p := Open(kv).Get()
	if p.WorkspaceName != "Acme" || !p.Completed(steps.Department) {
		t.Errorf("Get() = %+v", p)
	}
	if p.Version != recordVersion || p.RunID == "" {
		t.Errorf("Version = %d RunID = %q, want defaults filled", p.Version, p.RunID)
	}
}
