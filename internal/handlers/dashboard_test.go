package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/testutil"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
}

func TestDashboardShow(t *testing.T) {
	t.Run("renders_previous_month_stats", func(t *testing.T) {
		var gotMonth, gotYear int
		api := &mockDashboardAPI{
			stats: func(ctx context.Context, month, year int) (*backend.Stats, error) {
				gotMonth, gotYear = month, year
				return &backend.Stats{
					TotalIncome:  decimal.NewFromInt(100000),
					TotalExpense: decimal.NewFromInt(75000),
					ExpenseByCategory: map[string]decimal.Decimal{
						"Еда":   decimal.NewFromInt(30000),
						"Жильё": decimal.NewFromInt(45000),
					},
					Insight: "Расходы в пределах нормы",
				}, nil
			},
		}
		handler := NewDashboardHandler(api)
		handler.now = fixedNow

		router := newRouter(t)
		router.GET("/", handler.Show)
		w := doGet(t, router, "/")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotMonth != 7 || gotYear != 2026 {
			t.Errorf("expected stats for 7/2026, got %d/%d", gotMonth, gotYear)
		}

		body := w.Body.String()
		testutil.AssertContains(t, body, "Июль 2026")
		testutil.AssertContains(t, body, "100 000")
		testutil.AssertContains(t, body, "75 000")
		testutil.AssertContains(t, body, "Расходы в пределах нормы")
		// Largest expense category leads
		testutil.AssertContains(t, body, "Жильё")
	})

	t.Run("stats_error_degrades_inline", func(t *testing.T) {
		api := &mockDashboardAPI{
			stats: func(ctx context.Context, month, year int) (*backend.Stats, error) {
				return nil, apperrors.ErrAuthRequired
			},
			capitalSummary: func(ctx context.Context) (*backend.CapitalSummary, error) {
				return &backend.CapitalSummary{
					Assets:      decimal.NewFromInt(150000),
					Liabilities: decimal.NewFromInt(30000),
					Net:         decimal.NewFromInt(120000),
				}, nil
			},
		}
		handler := NewDashboardHandler(api)
		handler.now = fixedNow

		router := newRouter(t)
		router.GET("/", handler.Show)
		w := doGet(t, router, "/")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		testutil.AssertContains(t, body, "Требуется авторизация")
		// Other sections still render
		testutil.AssertContains(t, body, "120 000")
	})

	t.Run("renders_goals_and_last_consultation", func(t *testing.T) {
		api := &mockDashboardAPI{
			goals: func(ctx context.Context) ([]backend.Goal, error) {
				return []backend.Goal{{
					ID:      1,
					Title:   "Машина",
					Target:  decimal.NewFromInt(500000),
					Current: decimal.NewFromInt(250000),
				}}, nil
			},
			history: func(ctx context.Context) ([]backend.ConsultationHistoryItem, error) {
				return []backend.ConsultationHistoryItem{
					{Content: "Свежий совет", Date: "2026-08-10"},
					{Content: "Старый совет", Date: "2026-07-01"},
				}, nil
			},
		}
		handler := NewDashboardHandler(api)
		handler.now = fixedNow

		router := newRouter(t)
		router.GET("/", handler.Show)
		w := doGet(t, router, "/")

		body := w.Body.String()
		testutil.AssertContains(t, body, "Машина")
		testutil.AssertContains(t, body, "50%")
		testutil.AssertContains(t, body, "Свежий совет")
		if strings.Contains(body, "Старый совет") {
			t.Error("only the newest consultation should render")
		}
	})
}
