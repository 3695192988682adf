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
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloud-exit/workdesk/internal/catalog"
	"github.com/cloud-exit/workdesk/internal/selector"
	"github.com/cloud-exit/workdesk/internal/steps"
)

const fetchTimeout = 10 * time.Second

// screen identifies what the wizard is showing.
type screen int

const (
	screenCards screen = iota
	screenNames
	screenShifts
)

// nameFocus is the focused area of the name dialog.
type nameFocus int

const (
	focusSearch nameFocus = iota
	focusList
	focusChips
)

// Model is the root bubbletea model for the wizard.
type Model struct {
	ctrl     *Controller
	catalogs map[steps.Key]catalog.Fetcher

	screen screen
	cursor int
	notice string
	width  int
	height int
	quit   bool
	dest   string

	// Name dialog (departments, designations)
	dialogs    map[steps.Key]*selector.NameDialog // one per step, kept for the session
	nameKey    steps.Key
	search     textinput.Model
	nameFocus  nameFocus
	listCursor int
	chipCursor int
	loading    bool
	loadErr    string

	// Shift dialog
	shifts      *selector.ShiftDialog
	shiftInputs []textinput.Model // name, in-time, out-time, description
	shiftFocus  int               // len(shiftInputs) focuses the draft list
	shiftCursor int
}

// NewModel creates a wizard model positioned on the active step.
func NewModel(ctrl *Controller, catalogs map[steps.Key]catalog.Fetcher) Model {
	search := textinput.New()
	search.Placeholder = "Search or type a new name"
	search.CharLimit = 50
	search.Prompt = "Search: "

	placeholders := []string{"Shift name", "In-time (09:00)", "Out-time (17:00)", "Description (optional)"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 60
		in.Prompt = ""
		inputs[i] = in
	}

	return Model{
		ctrl:        ctrl,
		catalogs:    catalogs,
		cursor:      ctrl.ActiveIndex(),
		dialogs:     make(map[steps.Key]*selector.NameDialog),
		search:      search,
		shiftInputs: inputs,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		return m.handleCatalog(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenNames:
		return m.updateNames(msg)
	case screenShifts:
		return m.updateShifts(msg)
	}
	return m.updateCards(msg)
}

func (m Model) View() string {
	switch m.screen {
	case screenNames:
		return m.viewNames()
	case screenShifts:
		return m.viewShifts()
	}
	return m.viewCards()
}

// Destination returns the route chosen by the terminal step, if any.
func (m Model) Destination() string { return m.dest }

// Quit reports whether the user left the wizard before finishing.
func (m Model) Quit() bool { return m.quit }

// --- Catalog loading ---

type catalogLoadedMsg struct {
	key   steps.Key
	items []string
	err   error
}

func fetchCatalog(key steps.Key, f catalog.Fetcher) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := f.Fetch(ctx)
		return catalogLoadedMsg{key: key, items: items, err: err}
	}
}

func (m Model) handleCatalog(msg catalogLoadedMsg) Model {
	d, ok := m.dialogs[msg.key]
	if !ok {
		return m
	}
	if msg.err != nil {
		if msg.key == m.nameKey {
			m.loadErr = fmt.Sprintf("Could not load %ss: %v", msg.key, msg.err)
		}
	} else {
		d.SetCandidates(msg.items)
	}
	if msg.key == m.nameKey {
		m.loading = false
	}
	return m
}

// --- Cards ---

func (m Model) updateCards(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := m.ctrl.Registry().Len()

	switch key.String() {
	case "q", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k", "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "right", "l":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.activate(m.cursor)
	case "b", "backspace":
		if !m.ctrl.Back() {
			m.notice = "Nothing to go back to."
			return m, nil
		}
		m.notice = ""
		m.cursor = m.ctrl.ActiveIndex()
	}
	return m, nil
}

func (m Model) activate(index int) (tea.Model, tea.Cmd) {
	cards := m.ctrl.Cards()
	if index < 0 || index >= len(cards) {
		return m, nil
	}
	if cards[index].Def.Terminal {
		dest, ok := m.ctrl.Finish()
		if !ok {
			m.notice = "Complete every setup step to continue."
			return m, nil
		}
		m.dest = dest
		return m, tea.Quit
	}

	def, ok := m.ctrl.Activate(index)
	if !ok {
		m.notice = "Finish the current step first."
		return m, nil
	}
	m.notice = ""
	if def.Key == steps.Shift {
		return m.openShifts()
	}
	return m.openNames(def.Key)
}

// closeDialog returns to the cards, positioned on whatever step is now active.
func (m Model) closeDialog() Model {
	m.screen = screenCards
	m.search.Blur()
	for i := range m.shiftInputs {
		m.shiftInputs[i].Blur()
	}
	m.loading = false
	m.loadErr = ""
	m.cursor = m.ctrl.ActiveIndex()
	return m
}

func (m Model) viewCards() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Workspace Setup"))
	if ws := m.ctrl.WorkspaceName(); ws != "" {
		b.WriteString(subtitleStyle.Render("  " + ws))
	}
	b.WriteString("\n\n")
	b.WriteString(m.ctrl.Greeting() + "\n")
	b.WriteString(subtitleStyle.Render("Let's finish setting up your organization.") + "\n\n")
	b.WriteString(renderStepper(m.ctrl.StepperIndex()) + "\n\n")

	for _, card := range m.ctrl.Cards() {
		b.WriteString(m.renderCard(card, card.Index == m.cursor) + "\n")
	}

	if m.notice != "" {
		b.WriteString(warnStyle.Render(m.notice) + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ to move, Enter to open, b to go back, q to quit (progress is saved)"))
	return b.String()
}

func (m Model) renderCard(card Card, focused bool) string {
	var icon string
	switch card.Status {
	case Done:
		icon = successStyle.Render("✓")
	case Active:
		icon = cursorStyle.Render("●")
	default:
		icon = dimStyle.Render("○")
	}

	title := fmt.Sprintf("%d. %s", card.Index+1, card.Def.Title)
	if card.Status == Locked {
		title = dimStyle.Render(title)
	}
	cta := ctaDisabledStyle.Render("[ " + card.Def.CTA + " ]")
	if card.Actionable {
		cta = ctaStyle.Render(card.Def.CTA)
	}

	body := fmt.Sprintf("%s %s\n%s\n%s", icon, title, dimStyle.Render(card.Def.Description), cta)
	style := cardStyle
	if focused {
		style = cardFocusedStyle
	}
	return style.Width(m.cardWidth()).Render(body)
}

func (m Model) cardWidth() int {
	w := m.width - 4
	if w <= 0 || w > 76 {
		w = 76
	}
	if w < 30 {
		w = 30
	}
	return w
}

func renderStepper(active int) string {
	parts := make([]string, len(StepperLabels))
	for i, label := range StepperLabels {
		switch {
		case i < active:
			parts[i] = selectedStyle.Render("✓ " + label)
		case i == active:
			parts[i] = stepperActiveStyle.Render(label)
		default:
			parts[i] = dimStyle.Render(label)
		}
	}
	return strings.Join(parts, dimStyle.Render(" › "))
}
