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

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloud-exit/workdesk/static"
)

// Default catalog file names inside CatalogsDir().
const (
	DepartmentsFileName  = "departments.yaml"
	DesignationsFileName = "designations.yaml"
)

// EnsureDirs creates the workdesk directory structure if it doesn't exist.
func EnsureDirs() {
	dirs := []string{
		Home,
		Cache,
		Data,
		CatalogsDir(),
		KVDir(),
	}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}
}

// ConfigExists returns true if config.yaml exists.
func ConfigExists() bool {
	_, err := os.Stat(ConfigFile())
	return err == nil
}

// WriteDefaults writes the default config and editable catalog files if no
// config exists yet.
func WriteDefaults() error {
	if ConfigExists() {
		return nil
	}
	if err := writeCatalogDefaults(); err != nil {
		return err
	}
	cfg := DefaultConfig()
	cfg.Catalogs = CatalogsConfig{
		DepartmentsFile:  DepartmentsFileName,
		DesignationsFile: DesignationsFileName,
	}
	return SaveConfig(cfg)
}

// writeCatalogDefaults copies the embedded catalogs into CatalogsDir(),
// leaving existing files alone.
func writeCatalogDefaults() error {
	if err := os.MkdirAll(CatalogsDir(), 0755); err != nil {
		return fmt.Errorf("creating catalogs dir: %w", err)
	}
	files := map[string][]byte{
		DepartmentsFileName:  static.DefaultDepartmentsYAML,
		DesignationsFileName: static.DefaultDesignationsYAML,
	}
	for name, data := range files {
		path := filepath.Join(CatalogsDir(), name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}
