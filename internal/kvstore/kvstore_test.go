// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package kvstore

import (
	"errors"
	"slices"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSetAndGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("ems_workspace", []byte(`{"workspace_name":"Acme"}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := s.Get("ems_workspace")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"workspace_name":"Acme"}` {
		t.Errorf("Get = %q", got)
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("del", []byte("val")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete("del"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("del"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete("never-set"); err != nil {
		t.Errorf("Delete(never-set) = %v, want nil", err)
	}
}

func TestKeys(t *testing.T) {
	s := openTestStore(t)

	for _, k := range []string{"ems_signup", "ems_setup_progress", "ems_route", "other"} {
		if err := s.Set(k, []byte("x")); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	got, err := s.Keys("ems_")
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	want := []string{"ems_route", "ems_setup_progress", "ems_signup"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys(ems_) = %v, want %v", got, want)
	}
}

func TestOpenDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set("persist", []byte("yes")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	defer func() {
		if err := s2.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}()

	got, err := s2.Get("persist")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != "yes" {
		t.Errorf("Get = %q, want %q", got, "yes")
	}
}
