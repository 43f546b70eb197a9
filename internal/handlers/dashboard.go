// Package handlers holds the Gin handlers behind each screen. Every GET
// re-fetches its data from the backend; mutations POST, then redirect back
// to the owning screen with a flash message.
package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
	"finadvisor/internal/charts"
	"finadvisor/internal/logger"
	"finadvisor/internal/report"
)

// DashboardHandler renders the home screen: last-month stats with the
// income/expense/balance donut, the 12-month balance chart, capital
// summary with history, goal progress and the latest consultation.
type DashboardHandler struct {
	api backend.DashboardAPI
	now func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(api backend.DashboardAPI) *DashboardHandler {
	return &DashboardHandler{api: api, now: time.Now}
}

// goalView pairs a goal with its clamped progress percentage.
type goalView struct {
	backend.Goal
	Progress int
}

type dashboardView struct {
	Title  string
	Active string
	Notice string
	Error  string

	PeriodLabel string
	Stats       *backend.Stats
	StatsError  string
	Balance     decimal.Decimal
	Donut       []charts.Segment
	TopExpenses []report.CategoryAmount

	MonthlyChart *charts.BarChart

	Summary      *backend.CapitalSummary
	CapitalChart *charts.BarChart

	Goals        []goalView
	GoalsInsight string

	LastConsultation *backend.ConsultationHistoryItem
}

// Show handles GET /. The sections are independent, so their fetches fan
// out concurrently and each section degrades on its own: a failed stats
// call shows an inline message while the rest of the screen still renders.
func (h *DashboardHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	month, year := report.PreviousMonth(h.now())

	var (
		stats        *backend.Stats
		statsErr     error
		balance      []backend.MonthlyBalanceItem
		summary      *backend.CapitalSummary
		history      []backend.CapitalHistoryItem
		goals        []backend.Goal
		insight      *backend.GoalsInsight
		consultation []backend.ConsultationHistoryItem
	)

	var wg sync.WaitGroup
	fetch := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	fetch(func() { stats, statsErr = h.api.Stats(ctx, month, year) })
	fetch(func() { balance = fetchQuiet(ctx, "monthly balance", h.api.MonthlyBalance) })
	fetch(func() { summary = fetchQuietPtr(ctx, "capital summary", h.api.CapitalSummary) })
	fetch(func() { history = fetchQuiet(ctx, "capital history", h.api.CapitalHistory) })
	fetch(func() { goals = fetchQuiet(ctx, "goals", h.api.Goals) })
	fetch(func() { insight = fetchQuietPtr(ctx, "goals insight", h.api.GoalsInsight) })
	fetch(func() { consultation = fetchQuiet(ctx, "consultation history", h.api.ConsultationHistory) })
	wg.Wait()

	view := dashboardView{
		Title:       "Обзор",
		Active:      "dashboard",
		PeriodLabel: report.MonthLabel(year, month),
		Summary:     summary,
	}
	view.Notice, view.Error = flash(c)

	if statsErr != nil {
		view.StatsError = errorMessage(statsErr)
	} else if stats != nil {
		income, _ := stats.TotalIncome.Float64()
		expense, _ := stats.TotalExpense.Float64()
		net := stats.TotalIncome.Sub(stats.TotalExpense)
		netF, _ := net.Float64()

		view.Stats = stats
		view.Balance = net
		view.Donut = charts.DonutSegments(income, expense, netF)
		view.TopExpenses = report.TopCategories(stats.ExpenseByCategory, 5)
	}

	if len(balance) > 0 {
		bars := make([]charts.Bar, 0, len(balance))
		for _, item := range balance {
			income, _ := item.Income.Float64()
			expense, _ := item.Expense.Float64()
			net, _ := item.Difference.Float64()
			bars = append(bars, charts.Bar{
				Label:     item.Label,
				Primary:   income,
				Secondary: expense,
				Net:       net,
			})
		}
		view.MonthlyChart = charts.NewBarChart(bars)
	}

	if len(history) > 0 {
		bars := make([]charts.Bar, 0, len(history))
		for _, item := range history {
			assets, _ := item.Assets.Float64()
			liabilities, _ := item.Liabilities.Float64()
			net, _ := item.Net.Float64()
			bars = append(bars, charts.Bar{
				Label:     item.Label,
				Primary:   assets,
				Secondary: liabilities,
				Net:       net,
			})
		}
		view.CapitalChart = charts.NewBarChart(bars)
	}

	view.Goals = goalViews(goals)
	if insight != nil {
		view.GoalsInsight = insight.Insight
	}
	if len(consultation) > 0 {
		view.LastConsultation = &consultation[0]
	}

	c.HTML(http.StatusOK, "dashboard", view)
}

func goalViews(goals []backend.Goal) []goalView {
	views := make([]goalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, goalView{
			Goal:     g,
			Progress: report.GoalProgress(g.Current, g.Target),
		})
	}
	return views
}

// fetchQuiet runs a secondary fetch whose failure only costs its own
// section. The error is logged and the section renders empty.
func fetchQuiet[T any](ctx context.Context, name string, fn func(context.Context) ([]T, error)) []T {
	items, err := fn(ctx)
	if err != nil {
		logger.Get().Warnw("secondary fetch failed", "section", name, "error", err.Error())
		return nil
	}
	return items
}

func fetchQuietPtr[T any](ctx context.Context, name string, fn func(context.Context) (*T, error)) *T {
	item, err := fn(ctx)
	if err != nil {
		logger.Get().Warnw("secondary fetch failed", "section", name, "error", err.Error())
		return nil
	}
	return item
}
