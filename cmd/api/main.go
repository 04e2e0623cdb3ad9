package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/nmontano/shopledger/internal/config"
	"github.com/nmontano/shopledger/internal/database"
	"github.com/nmontano/shopledger/internal/export"
	ledgerHttp "github.com/nmontano/shopledger/internal/http"
	reportHandler "github.com/nmontano/shopledger/internal/http/report"
	"github.com/nmontano/shopledger/internal/report"
	"github.com/nmontano/shopledger/internal/source/store"
)

func main() {
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
	defer db.Close()

	sources := store.New(db)

	var (
		reportService        = report.NewService(sources)
		partialReportService = report.NewService(sources, report.WithPartialResults())
		exportService        = export.NewService()
	)

	reportH := reportHandler.NewHandler(reportService, partialReportService, exportService)

	router := ledgerHttp.New(reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
