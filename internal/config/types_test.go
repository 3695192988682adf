// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloud-exit/workdesk/internal/ui"
)

func withTempHome(t *testing.T) {
	t.Helper()
	oldHome, oldData := Home, Data
	Home = t.TempDir()
	Data = t.TempDir()
	t.Cleanup(func() {
		Home = oldHome
		Data = oldData
	})
}

func TestDefaultConfig_Routes(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Routes.Dashboard != "/dashboard" {
		t.Errorf("Dashboard = %q, want /dashboard", cfg.Routes.Dashboard)
	}
	if cfg.Routes.Login != "/login" {
		t.Errorf("Login = %q, want /login", cfg.Routes.Login)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
}

func TestStorageDir(t *testing.T) {
	withTempHome(t)

	cfg := DefaultConfig()
	if got := cfg.StorageDir(); got != KVDir() {
		t.Errorf("StorageDir() = %q, want %q", got, KVDir())
	}

	cfg.Storage.Dir = "/srv/workdesk"
	if got := cfg.StorageDir(); got != "/srv/workdesk" {
		t.Errorf("StorageDir() with override = %q, want /srv/workdesk", got)
	}
}

func TestCatalogPaths(t *testing.T) {
	withTempHome(t)

	cfg := &Config{Catalogs: CatalogsConfig{
		DepartmentsFile:  "departments.yaml",
		DesignationsFile: "/etc/workdesk/designations.yaml",
	}}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"relative", cfg.DepartmentsPath(), filepath.Join(CatalogsDir(), "departments.yaml")},
		{"absolute", cfg.DesignationsPath(), "/etc/workdesk/designations.yaml"},
		{"unset", (&Config{}).DepartmentsPath(), ""},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	withTempHome(t)

	cfg := DefaultConfig()
	cfg.Storage.InMemory = true
	cfg.Catalogs.DepartmentsFile = "departments.yaml"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	if !ConfigExists() {
		t.Fatal("ConfigExists() = false after SaveConfig")
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !loaded.Storage.InMemory {
		t.Error("Storage.InMemory not preserved")
	}
	if loaded.Catalogs.DepartmentsFile != "departments.yaml" {
		t.Errorf("DepartmentsFile = %q", loaded.Catalogs.DepartmentsFile)
	}
}

func TestLoadConfig_FillsMissingRoutes(t *testing.T) {
	withTempHome(t)

	if err := os.WriteFile(ConfigFile(), []byte("version: 1\nstorage:\n  in_memory: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Routes.Dashboard != DefaultDashboardRoute || cfg.Routes.Login != DefaultLoginRoute {
		t.Errorf("Routes = %+v, want defaults", cfg.Routes)
	}
}

func TestLoadOrDefault_Missing(t *testing.T) {
	withTempHome(t)

	cfg := LoadOrDefault()
	if cfg == nil || cfg.Routes.Dashboard != DefaultDashboardRoute {
		t.Errorf("LoadOrDefault() = %+v, want defaults", cfg)
	}
}

func TestWriteDefaults_DoesNotOverwrite(t *testing.T) {
	withTempHome(t)

	custom := DefaultConfig()
	custom.Routes.Dashboard = "/home"
	if err := SaveConfig(custom); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefaults(); err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	cfg := LoadOrDefault()
	if cfg.Routes.Dashboard != "/home" {
		t.Errorf("Dashboard = %q, WriteDefaults overwrote existing config", cfg.Routes.Dashboard)
	}
}

func TestWriteDefaults_WritesCatalogs(t *testing.T) {
	withTempHome(t)

	if err := WriteDefaults(); err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	cfg := LoadOrDefault()
	for _, path := range []string{cfg.DepartmentsPath(), cfg.DesignationsPath()} {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("catalog %s: %v", path, err)
			continue
		}
		if !strings.Contains(string(data), "items:") {
			t.Errorf("catalog %s has no items: %s", path, data)
		}
	}
}

func TestWriteDefaults_KeepsEditedCatalog(t *testing.T) {
	withTempHome(t)

	if err := os.MkdirAll(CatalogsDir(), 0755); err != nil {
		t.Fatal(err)
	}
	edited := filepath.Join(CatalogsDir(), DepartmentsFileName)
	if err := os.WriteFile(edited, []byte("items: [Legal]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefaults(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(edited)
	if string(data) != "items: [Legal]\n" {
		t.Errorf("edited catalog overwritten: %s", data)
	}
}

func TestLoadConfig_ErrorsNamePath(t *testing.T) {
	withTempHome(t)

	if err := os.WriteFile(ConfigFile(), []byte("routes: [not, a, map]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), ConfigFile()) {
		t.Errorf("LoadConfig() = %v, want error naming %s", err, ConfigFile())
	}
}

func TestLoadConfig_RejectsRelativeRoute(t *testing.T) {
	withTempHome(t)

	if err := os.WriteFile(ConfigFile(), []byte("routes:\n  dashboard: dashboard\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "routes.dashboard") {
		t.Errorf("LoadConfig() = %v, want routes.dashboard error", err)
	}
}

func TestLoadOrDefault_WarnsOnBadFile(t *testing.T) {
	withTempHome(t)
	var errOut bytes.Buffer
	oldErr := ui.Stderr
	ui.Stderr = &errOut
	t.Cleanup(func() { ui.Stderr = oldErr })

	if err := os.WriteFile(ConfigFile(), []byte("version: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := LoadOrDefault()
	if cfg.Routes.Login != DefaultLoginRoute {
		t.Errorf("LoadOrDefault() = %+v, want defaults", cfg)
	}
	if !strings.Contains(errOut.String(), "Using default configuration") {
		t.Errorf("stderr = %q, want a warning", errOut.String())
	}
}

func TestLoadOrDefault_MissingIsQuiet(t *testing.T) {
	withTempHome(t)
	var errOut bytes.Buffer
	oldErr := ui.Stderr
	ui.Stderr = &errOut
	t.Cleanup(func() { ui.Stderr = oldErr })

	LoadOrDefault()
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want nothing on first run", errOut.String())
	}
}

func TestSaveConfigTo_CreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := SaveConfigTo(DefaultConfig(), path); err != nil {
		t.Fatalf("SaveConfigTo: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if cfg.Routes.Dashboard != DefaultDashboardRoute {
		t.Errorf("Dashboard = %q", cfg.Routes.Dashboard)
	}
}
