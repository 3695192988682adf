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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloud-exit/workdesk/internal/selector"
	"github.com/cloud-exit/workdesk/internal/steps"
	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/spf13/cobra"
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Complete a setup step without the terminal UI",
		Long: "Save the selection for the current setup step. Names not in the catalog\n" +
			"are added as new entries. Selections add to the saved ones unless --replace is set.",
	}
	cmd.AddCommand(newSelectNamesCmd(steps.Department, "departments"))
	cmd.AddCommand(newSelectNamesCmd(steps.Designation, "designations"))
	cmd.AddCommand(newSelectShiftsCmd())
	return cmd
}

func newSelectNamesCmd(key steps.Key, plural string) *cobra.Command {
	var replace bool
	cmd := &cobra.Command{
		Use:   string(key) + " [NAME...]",
		Short: "Select " + plural,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := openSession(false)
			defer s.close()
			return selectNames(cmd.Context(), s, key, args, replace)
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Discard the saved "+plural+" first")
	return cmd
}

func newSelectShiftsCmd() *cobra.Command {
	var (
		specs   []string
		replace bool
	)
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Define shifts",
		Example: `  workdesk select shift --shift "Day,09:00,17:00" --shift "Night,22:00,06:00,Warehouse"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := openSession(false)
			defer s.close()
			return selectShifts(s, specs, replace)
		},
	}
	cmd.Flags().StringArrayVarP(&specs, "shift", "s", nil, "Shift as NAME,IN,OUT[,DESCRIPTION] (repeatable)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Discard the saved shifts first")
	return cmd
}

// openStep checks that the wizard would let the user open key's dialog now.
func openStep(s *session, key steps.Key) error {
	idx, ok := s.reg.IndexOf(key)
	if !ok {
		return fmt.Errorf("unknown step %q", key)
	}
	if _, ok := s.controller().Activate(idx); !ok {
		return fmt.Errorf("the %s step is not open (current route: %s); see 'workdesk status'", key, s.router.CurrentPath())
	}
	return nil
}

func selectNames(ctx context.Context, s *session, key steps.Key, names []string, replace bool) error {
	if err := openStep(s, key); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := s.controller()
	d := ctrl.OpenNameDialog(key)
	items, err := s.catalogs()[key].Fetch(ctx)
	if err != nil {
		ui.Warnf("Could not load the %s catalog: %v", key, err)
	} else {
		d.SetCandidates(items)
	}
	if replace {
		for _, n := range d.Draft() {
			d.Remove(n)
		}
	}

	for _, name := range names {
		if d.Select(name) {
			continue
		}
		err := d.AddNew(name)
		switch {
		case err == nil:
			ui.Infof("Added new %s '%s'", key, strings.TrimSpace(name))
		case errors.Is(err, selector.ErrDuplicateName):
			// already selected
		default:
			return errors.New(d.Error())
		}
	}

	saved, err := d.Save()
	if err != nil {
		return errors.New(d.Error())
	}
	ui.Successf("Saved %d %s: %s", len(saved), key, strings.Join(saved, ", "))
	ui.Infof("Next: %s", s.router.CurrentPath())
	return nil
}

func selectShifts(s *session, specs []string, replace bool) error {
	if err := openStep(s, steps.Shift); err != nil {
		return err
	}

	d := s.controller().OpenShiftDialog()
	if replace {
		for _, sh := range d.Draft() {
			d.Remove(sh.Name)
		}
	}
	for _, spec := range specs {
		in, err := parseShiftSpec(spec)
		if err != nil {
			return err
		}
		if err := d.Add(in); err != nil {
			return fmt.Errorf("shift %q: %s", spec, describeShiftErrors(d.FieldErrors()))
		}
	}

	saved, err := d.Save()
	if err != nil {
		return errors.New(d.Error())
	}
	ui.Successf("Saved %d shift(s)", len(saved))
	ui.Infof("Next: %s", s.router.CurrentPath())
	return nil
}

// parseShiftSpec parses NAME,IN,OUT[,DESCRIPTION].
func parseShiftSpec(spec string) (selector.ShiftInput, error) {
	parts := strings.SplitN(spec, ",", 4)
	if len(parts) < 3 {
		return selector.ShiftInput{}, fmt.Errorf("invalid shift %q: expected NAME,IN,OUT[,DESCRIPTION]", spec)
	}
	in := selector.ShiftInput{
		Name:    strings.TrimSpace(parts[0]),
		InTime:  strings.TrimSpace(parts[1]),
		OutTime: strings.TrimSpace(parts[2]),
	}
	if len(parts) == 4 {
		in.Description = strings.TrimSpace(parts[3])
	}
	return in, nil
}

func describeShiftErrors(fe selector.ShiftErrors) string {
	var msgs []string
	for _, m := range []string{fe.Name, fe.InTime, fe.OutTime} {
		if m != "" {
			msgs = append(msgs, m)
		}
	}
	return strings.Join(msgs, " ")
}

func init() {
	rootCmd.AddCommand(newSelectCmd())
}
