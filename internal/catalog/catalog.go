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

// Package catalog supplies the candidate names offered by the department and
// designation dialogs.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/cloud-exit/workdesk/static"
)

// Fetcher returns a candidate list. Implementations may block.
type Fetcher interface {
	Fetch(ctx context.Context) ([]string, error)
}

// Static is a fixed candidate list.
type Static []string

// Fetch returns a copy of the list.
func (s Static) Fetch(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone([]string(s)), nil
}

// Built-in lists, from the embedded default catalog files.
var (
	Departments  = mustParse("departments", static.DefaultDepartmentsYAML)
	Designations = mustParse("designations", static.DefaultDesignationsYAML)
)

// fileFormat is the YAML layout of a catalog file:
//
//	items:
//	  - Engineering
//	  - Sales
type fileFormat struct {
	Items []string `yaml:"items"`
}

// File reads candidates from a YAML file. A missing file falls back to
// Fallback when set.
type File struct {
	Path     string
	Fallback Fetcher
}

// Fetch reads and decodes the file.
func (f File) Fetch(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && f.Fallback != nil {
			ui.Debugf("catalog: %s not found, using built-in list", f.Path)
			return f.Fallback.Fetch(ctx)
		}
		return nil, fmt.Errorf("reading catalog %s: %w", f.Path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", f.Path, err)
	}
	return items, nil
}

// Parse decodes a catalog file.
func Parse(data []byte) ([]string, error) {
	var ff fileFormat
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, err
	}
	return ff.Items, nil
}

func mustParse(name string, data []byte) Static {
	items, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("embedded %s catalog: %v", name, err))
	}
	return Static(items)
}

// Cached fetches from its source once per session. Failed fetches are not
// cached, so a later call retries.
type Cached struct {
	src Fetcher

	mu     sync.Mutex
	items  []string
	loaded bool
}

// NewCached wraps src.
func NewCached(src Fetcher) *Cached {
	return &Cached{src: src}
}

// Fetch returns the cached list, fetching it on first use.
func (c *Cached) Fetch(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return slices.Clone(c.items), nil
	}
	items, err := c.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.items = slices.Clone(items)
	c.loaded = true
	return items, nil
}
