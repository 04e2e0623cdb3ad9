package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nmontano/shopledger/internal/report"
)

// Period is a predefined or custom reporting-window choice.
type Period int

const (
	PeriodToday     Period = 0
	PeriodThisMonth Period = 1
	PeriodLastMonth Period = 2
	PeriodThisYear  Period = 3
	PeriodCustom    Period = 4
)

func (p Period) String() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodThisMonth:
		return "This Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodThisYear:
		return "This Year"
	case PeriodCustom:
		return "Custom Range"
	}

	return "Unknown"
}

func periodToSelection(p Period) report.Selection {
	now := time.Now()

	switch p {
	case PeriodToday:
		return report.Day(now)
	case PeriodThisMonth:
		return report.Month(now.Year(), now.Month())
	case PeriodLastMonth:
		lastMonth := now.AddDate(0, 0, -now.Day())
		return report.Month(lastMonth.Year(), lastMonth.Month())
	case PeriodThisYear:
		return report.Year(now.Year())
	}

	return report.Selection{}
}

// PeriodSelectedMsg is emitted when the user has chosen a valid
// reporting window.
type PeriodSelectedMsg struct {
	Selection report.Selection
}

type periodState int

const (
	periodStateSelect periodState = iota
	periodStateCustom
)

// PeriodPicker selects the reporting window for a ledger report.
type PeriodPicker struct {
	CommonModel

	state    periodState
	selected Period

	form     *huh.Form
	startStr string
	endStr   string

	err error
}

func NewPeriodPicker() PeriodPicker {
	return PeriodPicker{state: periodStateSelect}
}

func (m PeriodPicker) Init() tea.Cmd {
	return nil
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	switch m.state {
	case periodStateSelect:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateSelect(keyMsg)
		}

		return m, nil
	case periodStateCustom:
		return m.updateCustom(msg)
	}

	return m, nil
}

func (m PeriodPicker) updateSelect(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > PeriodToday {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < PeriodCustom {
			m.selected++
		}
	case tea.KeyEsc:
		return m, Back
	case tea.KeyEnter:
		if m.selected == PeriodCustom {
			m.state = periodStateCustom
			m.startStr, m.endStr = "", ""
			m.form = m.newCustomForm()

			return m, m.form.Init()
		}

		sel := periodToSelection(m.selected)

		return m, func() tea.Msg {
			return PeriodSelectedMsg{Selection: sel}
		}
	}

	return m, nil
}

func (m *PeriodPicker) newCustomForm() *huh.Form {
	validDate := func(s string) error {
		if _, err := time.Parse(time.DateOnly, s); err != nil {
			return fmt.Errorf("use YYYY-MM-DD")
		}

		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("start").
				Title("Start Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.startStr).
				Validate(validDate),

			huh.NewInput().
				Key("end").
				Title("End Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.endStr).
				Validate(validDate),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m PeriodPicker) updateCustom(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = periodStateSelect
			m.form = nil
			m.err = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	start, _ := time.Parse(time.DateOnly, m.startStr)
	end, _ := time.Parse(time.DateOnly, m.endStr)

	sel := report.Span(start, end)
	if _, err := sel.Resolve(); err != nil {
		m.err = err
		m.state = periodStateSelect
		m.form = nil

		return m, nil
	}

	return m, func() tea.Msg {
		return PeriodSelectedMsg{Selection: sel}
	}
}

func (m PeriodPicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("\n\nError: %v", m.err))
	}

	if m.state == periodStateCustom {
		return fmt.Sprintf(
			"Enter Custom Range:\n\n%s\n\n(Enter to confirm, Esc to back)%s",
			m.form.View(),
			errStr,
		)
	}

	s := "Select Period:\n\n"
	for p := PeriodToday; p <= PeriodCustom; p++ {
		cursor := " "
		if m.selected == p {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, p.String())
	}

	s += "\n(Enter to select, Esc to back)"

	return s + errStr
}

// Reset returns the picker to its initial selection state.
func (m *PeriodPicker) Reset() {
	m.state = periodStateSelect
	m.selected = PeriodToday
	m.form = nil
	m.err = nil
}
