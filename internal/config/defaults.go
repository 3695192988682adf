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

// Default navigation targets outside the setup wizard.
const (
	DefaultDashboardRoute = "/dashboard"
	DefaultLoginRoute     = "/login"
)

// DefaultConfig returns a minimal default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Routes: RoutesConfig{
			Dashboard: DefaultDashboardRoute,
			Login:     DefaultLoginRoute,
		},
	}
}

// applyDefaults fills fields that older or hand-edited files leave empty.
func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Routes.Dashboard == "" {
		cfg.Routes.Dashboard = DefaultDashboardRoute
	}
	if cfg.Routes.Login == "" {
		cfg.Routes.Login = DefaultLoginRoute
	}
}
