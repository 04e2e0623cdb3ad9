package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nmontano/shopledger/internal/export"
	"github.com/nmontano/shopledger/internal/ledger"
	"github.com/nmontano/shopledger/internal/report"
)

type reportState int

const (
	reportStateLoading reportState = iota
	reportStateSummary
	reportStateDetail
)

// ReportModel builds a ledger report for a selection and lets the user
// drill into any category's transactions.
type ReportModel struct {
	CommonModel

	svc       *report.Service
	exportSvc *export.Service
	timeout   time.Duration

	sel report.Selection
	rep *ledger.Report

	state   reportState
	summary table.Model
	detail  table.Model

	err    error
	status string
}

func NewReportModel(svc *report.Service, exportSvc *export.Service, timeout time.Duration, sel report.Selection) ReportModel {
	columns := []table.Column{
		{Title: "Category", Width: 22},
		{Title: "Kind", Width: 8},
		{Title: "Bs", Width: 14},
		{Title: "$us", Width: 14},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ReportModel{
		svc:       svc,
		exportSvc: exportSvc,
		timeout:   timeout,
		sel:       sel,
		summary:   t,
		state:     reportStateLoading,
	}
}

type loadReportMsg struct {
	rep *ledger.Report
	err error
}

func (m ReportModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ReportModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()

		rep, err := m.svc.Build(ctx, m.sel)

		return loadReportMsg{rep: rep, err: err}
	}
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReportMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.rep = msg.rep
		m.state = reportStateSummary
		m.refreshSummary()

		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.status = "Exported " + msg.path
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case reportStateSummary:
		return m.updateSummary(msg)
	case reportStateDetail:
		return m.updateDetail(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	return m, nil
}

func (m *ReportModel) refreshSummary() {
	rows := make([]table.Row, 0, len(ledger.Categories()))

	for _, cat := range ledger.Categories() {
		buckets := m.rep.Categories[cat]

		status := ""
		if buckets.Incomplete {
			status = "incomplete"
		}

		rows = append(rows, table.Row{
			cat.Label(),
			string(cat.Kind()),
			buckets.BOB.Total.StringFixed(2),
			buckets.USD.Total.StringFixed(2),
			status,
		})
	}

	m.summary.SetRows(rows)
}

func (m ReportModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "x":
			return m, m.exportCmd()
		case "enter":
			return m.enterDetail()
		}
	}

	var cmd tea.Cmd
	m.summary, cmd = m.summary.Update(msg)

	return m, cmd
}

func (m ReportModel) enterDetail() (tea.Model, tea.Cmd) {
	idx := m.summary.Cursor()

	cats := ledger.Categories()
	if idx < 0 || idx >= len(cats) {
		return m, nil
	}

	cat := cats[idx]

	bob := m.rep.Drilldown(cat, ledger.BOB)
	usd := m.rep.Drilldown(cat, ledger.USD)

	items := make([]ledger.Transaction, 0, len(bob)+len(usd))
	items = append(items, bob...)
	items = append(items, usd...)

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 36},
		{Title: "Counterparty", Width: 20},
		{Title: "Amount", Width: 12},
		{Title: "Cur", Width: 5},
	}

	rows := make([]table.Row, 0, len(items))
	for _, tx := range items {
		rows = append(rows, table.Row{
			tx.Date.Format(time.DateOnly),
			tx.Description,
			tx.Counterparty,
			tx.Amount.StringFixed(2),
			string(tx.Currency),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	m.detail = t
	m.state = reportStateDetail
	m.status = cat.Label()

	return m, nil
}

func (m ReportModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = reportStateSummary
		m.status = ""

		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)

	return m, cmd
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m ReportModel) exportCmd() tea.Cmd {
	rep := m.rep

	return func() tea.Msg {
		path := fmt.Sprintf("ledger_%s_%s.csv",
			rep.Range.Start.Format("20060102"), rep.Range.End.Format("20060102"))

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()

		if err := m.exportSvc.WriteCSV(f, rep); err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path}
	}
}

func (m ReportModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error building report: %v\n\n(Esc to back)", m.err))
	}

	if m.state == reportStateLoading {
		return lipgloss.NewStyle().Padding(2).Render("Building report...")
	}

	header := fmt.Sprintf("Ledger %s\n", m.rep.Range.String())
	totals := fmt.Sprintf(
		"Income:  Bs %s | $us %s\nExpense: Bs %s | $us %s\nNet:     Bs %s | $us %s\n",
		m.rep.TotalIncome.BOB.StringFixed(2), m.rep.TotalIncome.USD.StringFixed(2),
		m.rep.TotalExpense.BOB.StringFixed(2), m.rep.TotalExpense.USD.StringFixed(2),
		m.rep.Net.BOB.StringFixed(2), m.rep.Net.USD.StringFixed(2),
	)

	if m.state == reportStateDetail {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			m.status,
			m.detail.View(),
			"\n(Esc to back)",
		)
	}

	footer := "(Enter: drill down | x: export csv | Esc: back)"
	if len(m.rep.Failures) > 0 {
		footer = fmt.Sprintf("Unavailable sources: %v\n%s", m.rep.Failures, footer)
	}

	if m.status != "" {
		footer = m.status + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		totals,
		m.summary.View(),
		"\n"+footer,
	)
}
