// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package ui

import (
	"bytes"
	"testing"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	DisableColors()
	var out, errOut bytes.Buffer
	oldOut, oldErr, oldVerbose := Stdout, Stderr, Verbose
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() {
		Stdout, Stderr, Verbose = oldOut, oldErr, oldVerbose
	})
	return &out, &errOut
}

func TestLevels(t *testing.T) {
	out, errOut := captureOutput(t)

	Infof("workspace %s", "Acme")
	Success("saved")
	Warn("storage unavailable")
	ErrorNoExit("bad path")

	if got, want := out.String(), "[INFO] workspace Acme\n[OK] saved\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "[WARN] storage unavailable\n[ERROR] bad path\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	_, errOut := captureOutput(t)

	Verbose = false
	Debug("hidden")
	if errOut.Len() != 0 {
		t.Errorf("Debug with Verbose=false wrote %q", errOut.String())
	}

	Verbose = true
	Debugf("step %d", 2)
	if got := errOut.String(); got != "[DEBUG] step 2\n" {
		t.Errorf("Debugf = %q", got)
	}
}

func TestError_Exits(t *testing.T) {
	_, errOut := captureOutput(t)

	var code int
	oldExit := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = oldExit })

	Errorf("cannot open %s", "store")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := errOut.String(); got != "[ERROR] cannot open store\n" {
		t.Errorf("stderr = %q", got)
	}
}
