package report_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nmontano/shopledger/internal/classify"
	"github.com/nmontano/shopledger/internal/export"
	handler "github.com/nmontano/shopledger/internal/http/report"
	"github.com/nmontano/shopledger/internal/report"
)

func newServer(t *testing.T, setup func(m *report.MockSources)) *httptest.Server {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sources := report.NewMockSources(ctrl)
	if setup != nil {
		setup(sources)
	}

	h := handler.NewHandler(
		report.NewService(sources),
		report.NewService(sources, report.WithPartialResults()),
		export.NewService(),
	)

	router := chi.NewRouter()
	router.Route("/reports", h.Routes)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func stubEmpty(m *report.MockSources) {
	m.EXPECT().OrderPayments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().DailyExpenses(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().PersonnelPayments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().PayrollAdvances(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().PayrollPayments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().SupplierPayments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().FixedExpenses(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.EXPECT().SupplyPurchases(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestHandler_Build_Day(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	srv := newServer(t, func(m *report.MockSources) {
		m.EXPECT().OrderPayments(gomock.Any(), gomock.Any()).Return([]classify.OrderPaymentRecord{
			{ID: 1, Amount: "500", Currency: "Bs", PaidAt: day},
		}, nil)
		stubEmpty(m)
	})

	resp, err := http.Get(srv.URL + "/reports?mode=day&date=2024-03-05")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Start       string `json:"start"`
		End         string `json:"end"`
		TotalIncome struct {
			BOB string `json:"bob"`
		} `json:"total_income"`
		Categories []struct {
			Category string `json:"category"`
		} `json:"categories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "2024-03-05", body.Start)
	assert.Equal(t, "2024-03-05", body.End)
	assert.Equal(t, "500", body.TotalIncome.BOB)
	assert.Len(t, body.Categories, 8)
}

func TestHandler_Build_BadRequests(t *testing.T) {
	srv := newServer(t, stubEmpty)

	type testCase struct {
		name  string
		query string
	}

	tests := []testCase{
		{name: "UnknownMode", query: "?mode=weekly"},
		{name: "MissingMode", query: ""},
		{name: "BadDate", query: "?mode=day&date=garbage"},
		{name: "InvertedRange", query: "?mode=range&start=2024-01-10&end=2024-01-01"},
		{name: "MissingRangeBound", query: "?mode=range&start=2024-01-10"},
		{name: "BadMonth", query: "?mode=month&year=2024&month=13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/reports" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandler_Build_SourceFailure(t *testing.T) {
	srv := newServer(t, func(m *report.MockSources) {
		m.EXPECT().SupplierPayments(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).AnyTimes()
		stubEmpty(m)
	})

	t.Run("FailClosed", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/reports?mode=year&year=2024")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("Partial", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/reports?mode=year&year=2024&partial=true")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Failures   []string `json:"failures"`
			Categories []struct {
				Category   string `json:"category"`
				Incomplete bool   `json:"incomplete"`
			} `json:"categories"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		assert.Equal(t, []string{"supplier_payments"}, body.Failures)

		for _, cat := range body.Categories {
			assert.Equal(t, cat.Category == "supplier_payment", cat.Incomplete, "category %s", cat.Category)
		}
	})
}

func TestHandler_ExportCSV(t *testing.T) {
	srv := newServer(t, stubEmpty)

	resp, err := http.Get(srv.URL + "/reports/export?mode=month&year=2024&month=2")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ledger_20240201_20240229.csv")
}
