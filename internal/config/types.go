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

package config

import "path/filepath"

// Config is the top-level workdesk configuration (config.yaml).
type Config struct {
	Version  int            `yaml:"version"`
	Storage  StorageConfig  `yaml:"storage"`
	Catalogs CatalogsConfig `yaml:"catalogs,omitempty"`
	Routes   RoutesConfig   `yaml:"routes"`
}

// StorageConfig controls where onboarding state is persisted.
type StorageConfig struct {
	Dir      string `yaml:"dir,omitempty"`       // overrides KVDir()
	InMemory bool   `yaml:"in_memory,omitempty"` // keep state for this process only
}

// CatalogsConfig points at YAML files overriding the built-in candidate lists.
// Relative paths are resolved against CatalogsDir().
type CatalogsConfig struct {
	DepartmentsFile  string `yaml:"departments_file,omitempty"`
	DesignationsFile string `yaml:"designations_file,omitempty"`
}

// RoutesConfig holds the navigation targets outside the setup wizard.
type RoutesConfig struct {
	Dashboard string `yaml:"dashboard"`
	Login     string `yaml:"login"`
}

// StorageDir returns the effective key-value store directory.
func (c *Config) StorageDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return KVDir()
}

// DepartmentsPath returns the resolved departments catalog file, or "".
func (c *Config) DepartmentsPath() string {
	return resolveCatalogPath(c.Catalogs.DepartmentsFile)
}

// DesignationsPath returns the resolved designations catalog file, or "".
func (c *Config) DesignationsPath() string {
	return resolveCatalogPath(c.Catalogs.DesignationsFile)
}

func resolveCatalogPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(CatalogsDir(), p)
}
