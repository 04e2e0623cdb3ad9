package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/nmontano/shopledger/cmd/tui/internal/view"
	"github.com/nmontano/shopledger/internal/config"
	"github.com/nmontano/shopledger/internal/database"
	"github.com/nmontano/shopledger/internal/export"
	"github.com/nmontano/shopledger/internal/report"
	"github.com/nmontano/shopledger/internal/source/store"
)

type model struct {
	cfg *config.Config

	// The TUI always runs in partial mode so a single offline source
	// still yields a report, with its categories flagged incomplete.
	reportService *report.Service
	exportService *export.Service

	currentView View

	periodView view.PeriodPicker
	reportView view.ReportModel
}

type View int

const (
	ViewMenu   View = 0
	ViewPeriod View = 1
	ViewReport View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	sources := store.New(db)

	return model{
		cfg:           cfg,
		reportService: report.NewService(sources, report.WithPartialResults()),
		exportService: export.NewService(),
		currentView:   ViewMenu,
		periodView:    view.NewPeriodPicker(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPeriod
				m.periodView.Reset()

				return m, m.periodView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	case view.PeriodSelectedMsg:
		m.currentView = ViewReport
		m.reportView = view.NewReportModel(
			m.reportService, m.exportService, m.cfg.Report.Timeout, msg.Selection)

		return m, m.reportView.Init()
	}

	switch m.currentView {
	case ViewPeriod:
		m.periodView, cmd = m.periodView.Update(msg)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"ShopLedger TUI\n\n" +
				"1. Build Ledger Report\n\n" +
				"q. Quit",
		)
	case ViewPeriod:
		return m.periodView.View()
	case ViewReport:
		return m.reportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
