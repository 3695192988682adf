// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package steps

import "testing"

type flagSet map[Key]bool

func (f flagSet) Completed(k Key) bool { return f[k] }

func TestDefault_Order(t *testing.T) {
	r := Default()
	want := []Key{Department, Designation, Shift, Complete}
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, k := range want {
		if r.At(i).Key != k {
			t.Errorf("At(%d).Key = %q, want %q", i, r.At(i).Key, k)
		}
	}
	if !r.At(3).Terminal {
		t.Error("last step should be terminal")
	}
	for i := 0; i < 3; i++ {
		if r.At(i).Terminal {
			t.Errorf("step %d should not be terminal", i)
		}
	}
}

func TestIndexForPath(t *testing.T) {
	r := Default()

	tests := []struct {
		path string
		want int
	}{
		{"/signup/department", 0},
		{"/signup/designation", 1},
		{"/signup/shift", 2},
		{"/signup/complete", 3},
		{"/signup/shift/", 2},
		{"/signup/designation?from=back", 1},
		{"/signup/complete#done", 3},
		{"  /signup/shift  ", 2},
		{"/signup/Shift", 0},
		{"/signup", 0},
		{"/dashboard", 0},
		{"", 0},
		{"%%%garbage", 0},
	}
	for _, tc := range tests {
		if got := r.IndexForPath(tc.path); got != tc.want {
			t.Errorf("IndexForPath(%q) = %d, want %d", tc.path, got, tc.want)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	r := Default()
	if _, ok := r.Lookup("/nowhere"); ok {
		t.Error("Lookup(/nowhere) ok = true, want false")
	}
}

func TestPathForIndex_Clamps(t *testing.T) {
	r := Default()

	tests := []struct {
		index int
		want  string
	}{
		{-1, "/signup/department"},
		{0, "/signup/department"},
		{2, "/signup/shift"},
		{3, "/signup/complete"},
		{4, "/signup/complete"},
		{99, "/signup/complete"},
	}
	for _, tc := range tests {
		if got := r.PathForIndex(tc.index); got != tc.want {
			t.Errorf("PathForIndex(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}

	if got := NewRegistry(nil).PathForIndex(0); got != "/" {
		t.Errorf("empty registry PathForIndex(0) = %q, want /", got)
	}
}

func TestSteps_ReturnsCopy(t *testing.T) {
	r := Default()
	s := r.Steps()
	s[0].Path = "/tampered"
	if r.At(0).Path != "/signup/department" {
		t.Error("mutating Steps() result changed the registry")
	}
}

func TestIndexOf(t *testing.T) {
	r := Default()
	if i, ok := r.IndexOf(Shift); !ok || i != 2 {
		t.Errorf("IndexOf(Shift) = %d, %v", i, ok)
	}
	if _, ok := r.IndexOf(Key("payroll")); ok {
		t.Error("IndexOf(payroll) ok = true")
	}
}

// allFlagCombinations returns the 8 truth assignments of the three flags.
func allFlagCombinations() []flagSet {
	var out []flagSet
	for mask := 0; mask < 8; mask++ {
		out = append(out, flagSet{
			Department:  mask&1 != 0,
			Designation: mask&2 != 0,
			Shift:       mask&4 != 0,
		})
	}
	return out
}

func TestResolveActiveStep_UnknownPathIsFirstStep(t *testing.T) {
	r := Default()
	for _, path := range []string{"/", "/login", "/signup/payroll", "signup/shift", ""} {
		for _, flags := range allFlagCombinations() {
			if got := ResolveActiveStep(r, path, flags); got != 0 {
				t.Errorf("ResolveActiveStep(%q, %v) = %d, want 0", path, flags, got)
			}
		}
	}
}

func TestResolveActiveStep_PathIsAuthoritative(t *testing.T) {
	r := Default()
	for _, flags := range allFlagCombinations() {
		if got := ResolveActiveStep(r, "/signup/shift", flags); got != 2 {
			t.Errorf("ResolveActiveStep(/signup/shift, %v) = %d, want 2", flags, got)
		}
	}
}

func TestTargetPathForStep(t *testing.T) {
	r := Default()
	if got := TargetPathForStep(r, 1); got != "/signup/designation" {
		t.Errorf("TargetPathForStep(1) = %q", got)
	}
}

func TestAllComplete_TruthTable(t *testing.T) {
	for _, flags := range allFlagCombinations() {
		want := flags[Department] && flags[Designation] && flags[Shift]
		if got := AllComplete(flags); got != want {
			t.Errorf("AllComplete(%v) = %v, want %v", flags, got, want)
		}
	}
	if AllComplete(nil) {
		t.Error("AllComplete(nil) = true")
	}
}
