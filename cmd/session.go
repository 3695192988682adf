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

package cmd

import (
	"strings"

	"github.com/cloud-exit/workdesk/internal/catalog"
	"github.com/cloud-exit/workdesk/internal/config"
	"github.com/cloud-exit/workdesk/internal/kvstore"
	"github.com/cloud-exit/workdesk/internal/nav"
	"github.com/cloud-exit/workdesk/internal/progress"
	"github.com/cloud-exit/workdesk/internal/signup"
	"github.com/cloud-exit/workdesk/internal/steps"
	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/cloud-exit/workdesk/internal/wizard"
)

// session bundles the records one command works on.
type session struct {
	cfg      *config.Config
	kv       *kvstore.Store // nil when storage is unavailable
	readOnly bool
	reg      *steps.Registry
	progress *progress.Store
	draft    *signup.Draft
	router   *nav.Router
}

// openSession opens the configured store. When it cannot be opened the
// session keeps its state in memory and says so.
func openSession(readOnly bool) *session {
	cfg := config.LoadOrDefault()
	if ephemeral {
		cfg.Storage.InMemory = true
	}
	kv, err := kvstore.Open(kvstore.Options{
		Dir:      cfg.StorageDir(),
		InMemory: cfg.Storage.InMemory,
		ReadOnly: readOnly && !cfg.Storage.InMemory,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			ui.Warn("Onboarding state is locked by another workdesk process. Changes in this run will not be saved.")
		} else if !readOnly {
			ui.Warnf("Onboarding state unavailable (%v). Changes in this run will not be saved.", err)
		}
		ui.Debugf("kv store open failed: %v", err)
		s := newSession(cfg, nil)
		s.readOnly = readOnly
		return s
	}
	s := newSession(cfg, kv)
	s.kv = kv
	s.readOnly = readOnly
	return s
}

// newSession builds a session over b. A nil b keeps everything in memory.
func newSession(cfg *config.Config, b kvstore.Backend) *session {
	reg := steps.Default()
	return &session{
		cfg:      cfg,
		reg:      reg,
		progress: progress.Open(b),
		draft:    signup.OpenDraft(b),
		router:   nav.NewRouter(b, steps.TargetPathForStep(reg, 0)),
	}
}

func (s *session) close() {
	if s.kv == nil {
		return
	}
	if err := s.kv.Close(); err != nil {
		ui.Warnf("Failed to close store: %v", err)
	}
}

func (s *session) controller() *wizard.Controller {
	return wizard.NewController(
		s.reg,
		s.progress,
		s.router,
		wizard.IdentityFrom(s.draft.Get()),
		wizard.Routes{Dashboard: s.cfg.Routes.Dashboard, Login: s.cfg.Routes.Login},
	)
}

func (s *session) onboarding() signup.Onboarding {
	return signup.Onboarding{
		Progress: s.progress,
		Draft:    s.draft,
		Nav:      s.router,
		Steps:    s.reg,
	}
}

// catalogs returns the candidate sources for the name dialogs, cached for the
// session.
func (s *session) catalogs() map[steps.Key]catalog.Fetcher {
	return map[steps.Key]catalog.Fetcher{
		steps.Department:  catalog.NewCached(catalogSource(s.cfg.DepartmentsPath(), catalog.Departments)),
		steps.Designation: catalog.NewCached(catalogSource(s.cfg.DesignationsPath(), catalog.Designations)),
	}
}

func catalogSource(path string, builtin catalog.Static) catalog.Fetcher {
	if path == "" {
		return builtin
	}
	return catalog.File{Path: path, Fallback: builtin}
}
