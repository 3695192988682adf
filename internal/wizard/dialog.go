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

package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/workdesk/internal/selector"
	"github.com/cloud-exit/workdesk/internal/steps"
)

const maxVisibleItems = 8

// --- Name dialog ---

func (m Model) openNames(key steps.Key) (tea.Model, tea.Cmd) {
	d, ok := m.dialogs[key]
	if !ok {
		d = m.ctrl.NameDialog(key)
		m.dialogs[key] = d
	}
	if key == steps.Designation {
		d.Open(m.ctrl.DesignationSeed())
	} else {
		d.Open(m.ctrl.DepartmentSeed())
	}

	m.screen = screenNames
	m.nameKey = key
	m.nameFocus = focusSearch
	m.listCursor = 0
	m.chipCursor = 0
	m.loadErr = ""
	m.search.Reset()
	focus := m.search.Focus()

	if d.Loaded() {
		return m, focus
	}
	f := m.catalogs[key]
	if f == nil {
		d.SetCandidates(nil)
		return m, focus
	}
	m.loading = true
	return m, tea.Batch(focus, fetchCatalog(key, f))
}

func (m Model) updateNames(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := m.dialogs[m.nameKey]
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		d.Cancel()
		return m.closeDialog(), nil
	case "ctrl+s":
		return m.saveNames(d)
	case "ctrl+a":
		d.SelectAll()
		m.listCursor = 0
		return m, nil
	case "ctrl+n":
		if err := d.AddNew(m.search.Value()); err == nil {
			m.search.Reset()
		}
		return m, nil
	case "tab":
		return m.focusNames((m.nameFocus + 1) % 3)
	case "shift+tab":
		return m.focusNames((m.nameFocus + 2) % 3)
	}

	switch m.nameFocus {
	case focusList:
		return m.updateNameList(key, d)
	case focusChips:
		return m.updateNameChips(key, d)
	}
	return m.updateNameSearch(key, d)
}

func (m Model) focusNames(f nameFocus) (tea.Model, tea.Cmd) {
	m.nameFocus = f
	if f == focusSearch {
		return m, m.search.Focus()
	}
	m.search.Blur()
	return m, nil
}

func (m Model) updateNameSearch(key tea.KeyMsg, d *selector.NameDialog) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		if d.NoMatches() {
			if err := d.AddNew(m.search.Value()); err == nil {
				m.search.Reset()
			}
			return m, nil
		}
		if len(d.Filtered()) > 0 {
			m.listCursor = 0
			return m.focusNames(focusList)
		}
		return m, nil
	case "down":
		if len(d.Filtered()) > 0 {
			m.listCursor = 0
			return m.focusNames(focusList)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(key)
	d.SetQuery(m.search.Value())
	m.listCursor = 0
	return m, cmd
}

func (m Model) updateNameList(key tea.KeyMsg, d *selector.NameDialog) (tea.Model, tea.Cmd) {
	items := d.Filtered()
	switch key.String() {
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		} else {
			return m.focusNames(focusSearch)
		}
	case "down", "j":
		if m.listCursor < len(items)-1 {
			m.listCursor++
		}
	case "enter", " ":
		if m.listCursor < len(items) {
			d.Select(items[m.listCursor])
		}
		if left := len(d.Filtered()); m.listCursor >= left {
			m.listCursor = max(left-1, 0)
		}
	case "a":
		d.SelectAll()
		m.listCursor = 0
	case "s":
		return m.saveNames(d)
	}
	return m, nil
}

func (m Model) updateNameChips(key tea.KeyMsg, d *selector.NameDialog) (tea.Model, tea.Cmd) {
	draft := d.Draft()
	switch key.String() {
	case "left", "h":
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	case "right", "l":
		if m.chipCursor < len(draft)-1 {
			m.chipCursor++
		}
	case "x", "delete", "backspace", "enter":
		if m.chipCursor < len(draft) {
			d.Remove(draft[m.chipCursor])
		}
		if m.chipCursor >= len(draft)-1 {
			m.chipCursor = max(len(draft)-2, 0)
		}
	case "s":
		return m.saveNames(d)
	}
	return m, nil
}

func (m Model) saveNames(d *selector.NameDialog) (tea.Model, tea.Cmd) {
	if _, err := d.Save(); err != nil {
		return m, nil
	}
	return m.closeDialog(), nil
}

func (m Model) viewNames() string {
	d := m.dialogs[m.nameKey]
	var b strings.Builder

	if idx, ok := m.ctrl.Registry().IndexOf(m.nameKey); ok {
		b.WriteString(titleStyle.Render(m.ctrl.Registry().At(idx).Title))
	}
	b.WriteString("\n\n")
	b.WriteString(m.search.View() + "\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	case m.loadErr != "":
		b.WriteString(errorStyle.Render(m.loadErr) + "\n")
		b.WriteString(dimStyle.Render("Type a name and press Enter to add it.") + "\n")
	case d.NoMatches():
		b.WriteString(warnStyle.Render("Oops, there is no result match.") + "\n")
		b.WriteString(cursorStyle.Render(fmt.Sprintf("Enter: Add New %q", strings.TrimSpace(m.search.Value()))) + "\n")
	case len(d.Catalog()) == 0:
		b.WriteString(dimStyle.Render("No data found") + "\n")
	default:
		b.WriteString(m.renderNameList(d.Filtered()))
	}

	b.WriteString("\n" + subtitleStyle.Render(fmt.Sprintf("Selected (%d)", len(d.Draft()))) + "\n")
	b.WriteString(m.renderChips(d.Draft()) + "\n")

	if msg := d.Error(); msg != "" {
		b.WriteString("\n" + errorStyle.Render(msg) + "\n")
	}
	b.WriteString(helpStyle.Render("Tab: switch focus, Enter: select, Ctrl+N: add new, Ctrl+A: select all, Ctrl+S: save, Esc: cancel"))
	return b.String()
}

func (m Model) renderNameList(items []string) string {
	if len(items) == 0 {
		return dimStyle.Render("Everything is selected.") + "\n"
	}
	start := 0
	if m.listCursor >= maxVisibleItems {
		start = m.listCursor - maxVisibleItems + 1
	}
	end := min(start+maxVisibleItems, len(items))

	var b strings.Builder
	for i := start; i < end; i++ {
		if m.nameFocus == focusList && i == m.listCursor {
			b.WriteString(cursorStyle.Render("> "+items[i]) + "\n")
		} else {
			b.WriteString("  " + items[i] + "\n")
		}
	}
	if end < len(items) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(items)-end)) + "\n")
	}
	return b.String()
}

func (m Model) renderChips(draft []string) string {
	if len(draft) == 0 {
		return dimStyle.Render("  nothing selected")
	}
	chips := make([]string, len(draft))
	for i, name := range draft {
		if m.nameFocus == focusChips && i == m.chipCursor {
			chips[i] = chipFocusedStyle.Render(name + " ×")
		} else {
			chips[i] = chipStyle.Render(name)
		}
	}
	return wrapChips(chips, m.cardWidth())
}

func wrapChips(chips []string, width int) string {
	var lines []string
	line := ""
	for _, c := range chips {
		if line != "" && lipgloss.Width(line)+lipgloss.Width(c) > width {
			lines = append(lines, line)
			line = ""
		}
		line += c
	}
	return strings.Join(append(lines, line), "\n")
}

// --- Shift dialog ---

var shiftLabels = []string{"Name", "In-time", "Out-time", "Description"}

func (m Model) openShifts() (tea.Model, tea.Cmd) {
	m.shifts = m.ctrl.OpenShiftDialog()
	m.screen = screenShifts
	m.shiftCursor = 0
	for i := range m.shiftInputs {
		m.shiftInputs[i].Reset()
	}
	return m.focusShift(0)
}

func (m Model) focusShift(i int) (tea.Model, tea.Cmd) {
	n := len(m.shiftInputs) + 1
	i = ((i % n) + n) % n
	m.shiftFocus = i
	var cmd tea.Cmd
	for j := range m.shiftInputs {
		if j == i {
			cmd = m.shiftInputs[j].Focus()
		} else {
			m.shiftInputs[j].Blur()
		}
	}
	return m, cmd
}

func (m Model) updateShifts(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.shiftFocus < len(m.shiftInputs) {
			var cmd tea.Cmd
			m.shiftInputs[m.shiftFocus], cmd = m.shiftInputs[m.shiftFocus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.shifts.Cancel()
		return m.closeDialog(), nil
	case "ctrl+s":
		if _, err := m.shifts.Save(); err != nil {
			return m, nil
		}
		return m.closeDialog(), nil
	case "tab":
		return m.focusShift(m.shiftFocus + 1)
	case "shift+tab":
		return m.focusShift(m.shiftFocus - 1)
	}

	if m.shiftFocus == len(m.shiftInputs) {
		return m.updateShiftList(key)
	}
	if key.String() == "enter" {
		return m.addShift()
	}
	var cmd tea.Cmd
	m.shiftInputs[m.shiftFocus], cmd = m.shiftInputs[m.shiftFocus].Update(key)
	return m, cmd
}

func (m Model) addShift() (tea.Model, tea.Cmd) {
	in := selector.ShiftInput{
		Name:        m.shiftInputs[0].Value(),
		InTime:      m.shiftInputs[1].Value(),
		OutTime:     m.shiftInputs[2].Value(),
		Description: m.shiftInputs[3].Value(),
	}
	if err := m.shifts.Add(in); err != nil {
		return m, nil
	}
	for i := range m.shiftInputs {
		m.shiftInputs[i].Reset()
	}
	return m.focusShift(0)
}

func (m Model) updateShiftList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	draft := m.shifts.Draft()
	switch key.String() {
	case "up", "k":
		if m.shiftCursor > 0 {
			m.shiftCursor--
		}
	case "down", "j":
		if m.shiftCursor < len(draft)-1 {
			m.shiftCursor++
		}
	case "x", "delete", "backspace":
		if m.shiftCursor < len(draft) {
			m.shifts.Remove(draft[m.shiftCursor].Name)
		}
		if m.shiftCursor >= len(draft)-1 {
			m.shiftCursor = max(len(draft)-2, 0)
		}
	}
	return m, nil
}

func (m Model) viewShifts() string {
	var b strings.Builder
	if idx, ok := m.ctrl.Registry().IndexOf(steps.Shift); ok {
		b.WriteString(titleStyle.Render(m.ctrl.Registry().At(idx).Title))
	}
	b.WriteString("\n\n")

	fe := m.shifts.FieldErrors()
	fieldErrs := []string{fe.Name, fe.InTime, fe.OutTime, ""}
	for i, in := range m.shiftInputs {
		label := fmt.Sprintf("%-12s", shiftLabels[i])
		if i == m.shiftFocus {
			label = cursorStyle.Render(label)
		} else {
			label = subtitleStyle.Render(label)
		}
		b.WriteString(label + " " + in.View() + "\n")
		if fieldErrs[i] != "" {
			b.WriteString(strings.Repeat(" ", 13) + errorStyle.Render(fieldErrs[i]) + "\n")
		}
	}

	draft := m.shifts.Draft()
	b.WriteString("\n" + subtitleStyle.Render(fmt.Sprintf("Shifts (%d)", len(draft))) + "\n")
	if len(draft) == 0 {
		b.WriteString(dimStyle.Render("  No shifts added yet") + "\n")
	}
	listFocused := m.shiftFocus == len(m.shiftInputs)
	for i, s := range draft {
		line := s.String()
		if s.Overnight() {
			line += dimStyle.Render(" overnight")
		}
		if s.Description != "" {
			line += dimStyle.Render(" - " + s.Description)
		}
		if listFocused && i == m.shiftCursor {
			b.WriteString(cursorStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	if msg := m.shifts.Error(); msg != "" {
		b.WriteString("\n" + errorStyle.Render(msg) + "\n")
	}
	b.WriteString(helpStyle.Render("Tab: next field, Enter: add shift, x: remove (in list), Ctrl+S: save, Esc: cancel"))
	return b.String()
}
