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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloud-exit/workdesk/internal/signup"
	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errInvalidForm = errors.New("invalid signup form")

func newSignupCmd() *cobra.Command {
	var form signup.Form
	var password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a workspace and start its setup",
		Long: "Validate the workspace details, create the workspace and open the setup wizard.\n" +
			"The password is prompted for unless --password is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password != "" {
				form.Password, form.ConfirmPassword = password, password
			} else {
				pw, confirm, err := promptPassword(os.Stdin, os.Stderr)
				if err != nil {
					return err
				}
				form.Password, form.ConfirmPassword = pw, confirm
			}

			s := openSession(false)
			defer s.close()
			if err := runSignup(s, form); err != nil {
				return err
			}
			ui.Info("Run 'workdesk setup' to continue.")
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "Email address")
	cmd.Flags().StringVarP(&form.Workspace, "workspace", "w", "", "Workspace name (3-50 characters)")
	cmd.Flags().StringVar(&form.Name, "name", "", "Your full name")
	cmd.Flags().StringVar(&form.Role, "role", signup.Roles[0], "Your role ("+strings.Join(signup.Roles, ", ")+")")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func runSignup(s *session, form signup.Form) error {
	fe := s.onboarding().Begin(form)
	if !fe.OK() {
		for _, f := range fe.Fields() {
			ui.ErrorNoExit(fmt.Sprintf("%s: %s", f[0], f[1]))
		}
		return errInvalidForm
	}
	ui.Successf("Workspace '%s' created", form.Workspace)
	return nil
}

// promptPassword asks for the password twice on a terminal. Without one it
// reads a single line and uses it for both.
func promptPassword(in *os.File, out io.Writer) (string, string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", "", fmt.Errorf("reading password: %w", err)
		}
		pw := strings.TrimRight(line, "\r\n")
		return pw, pw, nil
	}

	read := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		b, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}
	pw, err := read("Password: ")
	if err != nil {
		return "", "", err
	}
	confirm, err := read("Confirm password: ")
	if err != nil {
		return "", "", err
	}
	return pw, confirm, nil
}

func init() {
	rootCmd.AddCommand(newSignupCmd())
}
