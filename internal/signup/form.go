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

// Package signup validates the workspace creation form and starts the setup
// wizard for the new workspace.
package signup

import (
	"regexp"
	"strings"
)

// Roles lists the selectable roles for the workspace creator.
var Roles = []string{"Admin"}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	namePattern  = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// Form is the workspace creation form.
type Form struct {
	Email           string
	Workspace       string
	Name            string
	Password        string
	ConfirmPassword string
	Role            string
}

// FormErrors holds one message per invalid field. Empty strings mean valid.
type FormErrors struct {
	Email           string
	Workspace       string
	Name            string
	Password        string
	ConfirmPassword string
	Role            string
}

// OK reports whether every field is valid.
func (e FormErrors) OK() bool {
	return e == FormErrors{}
}

// Fields returns the invalid fields in form order as name/message pairs.
func (e FormErrors) Fields() [][2]string {
	var out [][2]string
	for _, f := range [][2]string{
		{"email", e.Email},
		{"workspace", e.Workspace},
		{"name", e.Name},
		{"password", e.Password},
		{"confirm-password", e.ConfirmPassword},
		{"role", e.Role},
	} {
		if f[1] != "" {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks every field of f.
func Validate(f Form) FormErrors {
	return FormErrors{
		Email:           validateEmail(f.Email),
		Workspace:       validateWorkspace(f.Workspace),
		Name:            validateName(f.Name),
		Password:        validatePassword(f.Password),
		ConfirmPassword: validateConfirm(f.Password, f.ConfirmPassword),
		Role:            validateRole(f.Role),
	}
}

// validateEmail returns the error message for an invalid address.
func validateEmail(email string) string {
	if email == "" || !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

func validateWorkspace(ws string) string {
	n := len([]rune(ws))
	switch {
	case ws == "":
		return "Workspace name is required"
	case n < 3:
		return "Name must be at least 3 characters"
	case n > 50:
		return "Name is too long"
	}
	return ""
}

func validateName(name string) string {
	if name == "" {
		return "Name is required"
	}
	if !namePattern.MatchString(name) {
		return "Name must contain only letters and spaces"
	}
	return ""
}

// validatePassword requires at least 8 characters with an upper case letter,
// a lower case letter and a digit.
func validatePassword(pw string) string {
	if pw == "" {
		return "Password is required"
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if len([]rune(pw)) < 8 || !upper || !lower || !digit {
		return "Password must be at least 8 characters, include uppercase, lowercase, and a number"
	}
	return ""
}

func validateConfirm(pw, confirm string) string {
	if confirm == "" {
		return "Please confirm your password"
	}
	if confirm != pw {
		return "Passwords do not match"
	}
	return ""
}

func validateRole(role string) string {
	if strings.TrimSpace(role) == "" {
		return "Role is required"
	}
	for _, r := range Roles {
		if r == role {
			return ""
		}
	}
	return "Role must be one of: " + strings.Join(Roles, ", ")
}
