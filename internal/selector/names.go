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

package selector

import (
	"fmt"
	"strings"
)

// NameDialog picks or creates named items (departments, designations).
type NameDialog struct {
	// Noun is the singular item name used in messages, e.g. "department".
	Noun string
	// OnSave receives the finalized selection. Called at most once per Save.
	OnSave func([]string)

	base    []string // committed catalog: fetched items plus saved additions
	catalog []string // base plus seed items and additions of this session
	draft   []string
	query   string
	loaded  bool
	open    bool
	err     string
}

// NewNameDialog returns a closed dialog for noun.
func NewNameDialog(noun string, onSave func([]string)) *NameDialog {
	return &NameDialog{Noun: noun, OnSave: onSave}
}

// SetCandidates installs the fetched catalog. Duplicates (case-insensitive)
// and blank entries are dropped.
func (d *NameDialog) SetCandidates(items []string) {
	d.base = appendUnique(nil, items...)
	d.loaded = true
	if d.open {
		d.catalog = appendUnique(append([]string(nil), d.base...), d.catalog...)
	}
}

// Loaded reports whether SetCandidates has been called.
func (d *NameDialog) Loaded() bool { return d.loaded }

// Open starts a new draft seeded from the owner's last saved selection.
func (d *NameDialog) Open(seed []string) {
	d.draft = appendUnique(nil, seed...)
	d.catalog = appendUnique(append([]string(nil), d.base...), d.draft...)
	d.query = ""
	d.err = ""
	d.open = true
}

// IsOpen reports whether the dialog is showing.
func (d *NameDialog) IsOpen() bool { return d.open }

// Cancel closes the dialog and discards the draft and unsaved additions.
func (d *NameDialog) Cancel() {
	d.open = false
	d.draft = nil
	d.catalog = nil
	d.query = ""
	d.err = ""
}

// SetQuery sets the search text.
func (d *NameDialog) SetQuery(q string) { d.query = q }

// Query returns the search text.
func (d *NameDialog) Query() string { return d.query }

// Catalog returns every candidate known to this session, selected or not.
func (d *NameDialog) Catalog() []string {
	return append([]string(nil), d.catalog...)
}

// Filtered returns unselected candidates whose name contains the query,
// case-insensitively.
func (d *NameDialog) Filtered() []string {
	q := strings.ToLower(strings.TrimSpace(d.query))
	var out []string
	for _, item := range d.catalog {
		if containsFold(d.draft, item) {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(item), q) {
			out = append(out, item)
		}
	}
	return out
}

// NoMatches reports whether a non-empty search matched nothing.
func (d *NameDialog) NoMatches() bool {
	return strings.TrimSpace(d.query) != "" && len(d.Filtered()) == 0
}

// Draft returns a copy of the current draft selection.
func (d *NameDialog) Draft() []string {
	return append([]string(nil), d.draft...)
}

// Error returns the inline error message, if any.
func (d *NameDialog) Error() string { return d.err }

// Select moves a candidate into the draft. It reports false when name is not
// an unselected candidate or the dialog is closed.
func (d *NameDialog) Select(name string) bool {
	if !d.open {
		return false
	}
	item, ok := findFold(d.catalog, name)
	if !ok || containsFold(d.draft, item) {
		return false
	}
	d.draft = append(d.draft, item)
	d.err = ""
	return true
}

// SelectAll adds every remaining unselected candidate and returns how many
// were added. The search query does not restrict it.
func (d *NameDialog) SelectAll() int {
	if !d.open {
		return 0
	}
	n := 0
	for _, item := range d.catalog {
		if !containsFold(d.draft, item) {
			d.draft = append(d.draft, item)
			n++
		}
	}
	if n > 0 {
		d.err = ""
	}
	return n
}

// Remove drops name from the draft. The catalog is unchanged.
func (d *NameDialog) Remove(name string) bool {
	if !d.open {
		return false
	}
	for i, item := range d.draft {
		if strings.EqualFold(item, strings.TrimSpace(name)) {
			d.draft = append(d.draft[:i], d.draft[i+1:]...)
			return true
		}
	}
	return false
}

// AddNew defines a new item and selects it. The name must be non-empty and
// not a case-insensitive duplicate of a catalog or draft entry. A closed
// dialog returns ErrNotOpen.
func (d *NameDialog) AddNew(name string) error {
	if !d.open {
		return ErrNotOpen
	}
	name = strings.TrimSpace(name)
	if name == "" {
		d.err = fmt.Sprintf("%s name is required.", capitalize(d.Noun))
		return ErrEmptyName
	}
	if containsFold(d.catalog, name) || containsFold(d.draft, name) {
		d.err = fmt.Sprintf("This %s already exists.", d.Noun)
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	d.catalog = append(d.catalog, name)
	d.draft = append(d.draft, name)
	d.query = ""
	d.err = ""
	return nil
}

// Save hands a non-empty draft to OnSave and closes the dialog. An empty
// draft is rejected and the dialog stays open.
func (d *NameDialog) Save() ([]string, error) {
	if !d.open {
		return nil, ErrNotOpen
	}
	if len(d.draft) == 0 {
		d.err = fmt.Sprintf("Please select at least one %s.", d.Noun)
		return nil, ErrEmptySelection
	}
	selected := d.Draft()
	d.base = appendUnique(d.base, d.catalog...)
	d.open = false
	d.draft = nil
	d.catalog = nil
	d.query = ""
	d.err = ""
	if d.OnSave != nil {
		d.OnSave(append([]string(nil), selected...))
	}
	return selected, nil
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || containsFold(dst, item) {
			continue
		}
		dst = append(dst, item)
	}
	return dst
}

func containsFold(list []string, name string) bool {
	_, ok := findFold(list, name)
	return ok
}

func findFold(list []string, name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return item, true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
