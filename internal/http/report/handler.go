package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nmontano/shopledger/internal/export"
	"github.com/nmontano/shopledger/internal/ledger"
	"github.com/nmontano/shopledger/internal/report"
)

type Handler struct {
	strict  *report.Service
	partial *report.Service
	export  *export.Service
}

// NewHandler serves reports from two services over the same sources:
// the default fail-closed one and a partial-results one selected by
// the "partial" query flag.
func NewHandler(strict, partial *report.Service, exportSvc *export.Service) *Handler {
	return &Handler{strict: strict, partial: partial, export: exportSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.build)
	r.Get("/export", h.exportCSV)
}

// parseSelection maps the query parameters onto a reporting-window
// selection: mode=day|range|month|year plus the mode's fields.
func parseSelection(r *http.Request) (report.Selection, error) {
	q := r.URL.Query()

	switch mode := q.Get("mode"); mode {
	case "day":
		d, err := time.Parse(time.DateOnly, q.Get("date"))
		if err != nil {
			return report.Selection{}, fmt.Errorf("invalid date: %w", err)
		}

		return report.Day(d), nil

	case "range":
		var start, end time.Time

		if s := q.Get("start"); s != "" {
			t, err := time.Parse(time.DateOnly, s)
			if err != nil {
				return report.Selection{}, fmt.Errorf("invalid start: %w", err)
			}

			start = t
		}

		if s := q.Get("end"); s != "" {
			t, err := time.Parse(time.DateOnly, s)
			if err != nil {
				return report.Selection{}, fmt.Errorf("invalid end: %w", err)
			}

			end = t
		}

		// Missing bounds stay zero and fail range validation downstream.
		return report.Span(start, end), nil

	case "month":
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			return report.Selection{}, fmt.Errorf("invalid year: %w", err)
		}

		month, err := strconv.Atoi(q.Get("month"))
		if err != nil || month < 1 || month > 12 {
			return report.Selection{}, fmt.Errorf("invalid month")
		}

		return report.Month(year, time.Month(month)), nil

	case "year":
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			return report.Selection{}, fmt.Errorf("invalid year: %w", err)
		}

		return report.Year(year), nil

	default:
		return report.Selection{}, fmt.Errorf("unknown mode %q", mode)
	}
}

func (h *Handler) service(r *http.Request) *report.Service {
	if r.URL.Query().Get("partial") == "true" {
		return h.partial
	}

	return h.strict
}

func (h *Handler) buildReport(w http.ResponseWriter, r *http.Request) *ledger.Report {
	sel, err := parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	rep, err := h.service(r).Build(r.Context(), sel)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidRange):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			var buildErr *report.BuildError
			if errors.As(err, &buildErr) {
				http.Error(w, buildErr.Error(), http.StatusBadGateway)
				return nil
			}

			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return nil
	}

	return rep
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) {
	rep := h.buildReport(w, r)
	if rep == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	rep := h.buildReport(w, r)
	if rep == nil {
		return
	}

	filename := fmt.Sprintf("ledger_%s_%s.csv",
		rep.Range.Start.Format("20060102"), rep.Range.End.Format("20060102"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if err := h.export.WriteCSV(w, rep); err != nil {
		slog.Error("failed to write report csv", "error", err)
	}
}
