package handlers

import (
	"context"
	"io"

	"finadvisor/internal/backend"
)

// Function-field mocks for the per-screen API interfaces. Unset fields
// return empty data so screens render without wiring every call.

type mockDashboardAPI struct {
	stats          func(ctx context.Context, month, year int) (*backend.Stats, error)
	monthlyBalance func(ctx context.Context) ([]backend.MonthlyBalanceItem, error)
	capitalSummary func(ctx context.Context) (*backend.CapitalSummary, error)
	capitalHistory func(ctx context.Context) ([]backend.CapitalHistoryItem, error)
	goals          func(ctx context.Context) ([]backend.Goal, error)
	goalsInsight   func(ctx context.Context) (*backend.GoalsInsight, error)
	history        func(ctx context.Context) ([]backend.ConsultationHistoryItem, error)
}

func (m *mockDashboardAPI) Stats(ctx context.Context, month, year int) (*backend.Stats, error) {
	if m.stats == nil {
		return &backend.Stats{}, nil
	}
	return m.stats(ctx, month, year)
}

func (m *mockDashboardAPI) MonthlyBalance(ctx context.Context) ([]backend.MonthlyBalanceItem, error) {
	if m.monthlyBalance == nil {
		return nil, nil
	}
	return m.monthlyBalance(ctx)
}

func (m *mockDashboardAPI) CapitalSummary(ctx context.Context) (*backend.CapitalSummary, error) {
	if m.capitalSummary == nil {
		return nil, nil
	}
	return m.capitalSummary(ctx)
}

func (m *mockDashboardAPI) CapitalHistory(ctx context.Context) ([]backend.CapitalHistoryItem, error) {
	if m.capitalHistory == nil {
		return nil, nil
	}
	return m.capitalHistory(ctx)
}

func (m *mockDashboardAPI) Goals(ctx context.Context) ([]backend.Goal, error) {
	if m.goals == nil {
		return nil, nil
	}
	return m.goals(ctx)
}

func (m *mockDashboardAPI) GoalsInsight(ctx context.Context) (*backend.GoalsInsight, error) {
	if m.goalsInsight == nil {
		return nil, nil
	}
	return m.goalsInsight(ctx)
}

func (m *mockDashboardAPI) ConsultationHistory(ctx context.Context) ([]backend.ConsultationHistoryItem, error) {
	if m.history == nil {
		return nil, nil
	}
	return m.history(ctx)
}

type mockTransactionsAPI struct {
	transactions      func(ctx context.Context, q backend.TransactionQuery) ([]backend.Transaction, error)
	categories        func(ctx context.Context) ([]backend.Category, error)
	createTransaction func(ctx context.Context, req backend.TransactionRequest) error
	updateTransaction func(ctx context.Context, id int64, req backend.TransactionRequest) error
	deleteTransaction func(ctx context.Context, id int64) error
	importStatement   func(ctx context.Context, filename string, file io.Reader) (*backend.ImportResult, error)
	applyImport       func(ctx context.Context, mode string, candidates []backend.ImportCandidate) error
}

func (m *mockTransactionsAPI) Transactions(ctx context.Context, q backend.TransactionQuery) ([]backend.Transaction, error) {
	if m.transactions == nil {
		return nil, nil
	}
	return m.transactions(ctx, q)
}

func (m *mockTransactionsAPI) Categories(ctx context.Context) ([]backend.Category, error) {
	if m.categories == nil {
		return nil, nil
	}
	return m.categories(ctx)
}

func (m *mockTransactionsAPI) CreateTransaction(ctx context.Context, req backend.TransactionRequest) error {
	if m.createTransaction == nil {
		return nil
	}
	return m.createTransaction(ctx, req)
}

func (m *mockTransactionsAPI) UpdateTransaction(ctx context.Context, id int64, req backend.TransactionRequest) error {
	if m.updateTransaction == nil {
		return nil
	}
	return m.updateTransaction(ctx, id, req)
}

func (m *mockTransactionsAPI) DeleteTransaction(ctx context.Context, id int64) error {
	if m.deleteTransaction == nil {
		return nil
	}
	return m.deleteTransaction(ctx, id)
}

func (m *mockTransactionsAPI) ImportStatement(ctx context.Context, filename string, file io.Reader) (*backend.ImportResult, error) {
	if m.importStatement == nil {
		return &backend.ImportResult{}, nil
	}
	return m.importStatement(ctx, filename, file)
}

func (m *mockTransactionsAPI) ApplyImport(ctx context.Context, mode string, candidates []backend.ImportCandidate) error {
	if m.applyImport == nil {
		return nil
	}
	return m.applyImport(ctx, mode, candidates)
}

type mockCapitalAPI struct {
	assets          func(ctx context.Context) ([]backend.Asset, error)
	liabilities     func(ctx context.Context) ([]backend.Liability, error)
	createAsset     func(ctx context.Context, req backend.AssetRequest) error
	updateAsset     func(ctx context.Context, id int64, req backend.AssetRequest) error
	deleteAsset     func(ctx context.Context, id int64) error
	createLiability func(ctx context.Context, req backend.LiabilityRequest) error
	updateLiability func(ctx context.Context, id int64, req backend.LiabilityRequest) error
	deleteLiability func(ctx context.Context, id int64) error
}

func (m *mockCapitalAPI) Assets(ctx context.Context) ([]backend.Asset, error) {
	if m.assets == nil {
		return nil, nil
	}
	return m.assets(ctx)
}

func (m *mockCapitalAPI) Liabilities(ctx context.Context) ([]backend.Liability, error) {
	if m.liabilities == nil {
		return nil, nil
	}
	return m.liabilities(ctx)
}

func (m *mockCapitalAPI) CreateAsset(ctx context.Context, req backend.AssetRequest) error {
	if m.createAsset == nil {
		return nil
	}
	return m.createAsset(ctx, req)
}

func (m *mockCapitalAPI) UpdateAsset(ctx context.Context, id int64, req backend.AssetRequest) error {
	if m.updateAsset == nil {
		return nil
	}
	return m.updateAsset(ctx, id, req)
}

func (m *mockCapitalAPI) DeleteAsset(ctx context.Context, id int64) error {
	if m.deleteAsset == nil {
		return nil
	}
	return m.deleteAsset(ctx, id)
}

func (m *mockCapitalAPI) CreateLiability(ctx context.Context, req backend.LiabilityRequest) error {
	if m.createLiability == nil {
		return nil
	}
	return m.createLiability(ctx, req)
}

func (m *mockCapitalAPI) UpdateLiability(ctx context.Context, id int64, req backend.LiabilityRequest) error {
	if m.updateLiability == nil {
		return nil
	}
	return m.updateLiability(ctx, id, req)
}

func (m *mockCapitalAPI) DeleteLiability(ctx context.Context, id int64) error {
	if m.deleteLiability == nil {
		return nil
	}
	return m.deleteLiability(ctx, id)
}

type mockConsultationAPI struct {
	goals       func(ctx context.Context) ([]backend.Goal, error)
	createGoal  func(ctx context.Context, req backend.GoalRequest) error
	updateGoal  func(ctx context.Context, id int64, req backend.GoalRequest) error
	deleteGoal  func(ctx context.Context, id int64) error
	consult     func(ctx context.Context) (*backend.ConsultationResult, error)
	history     func(ctx context.Context) ([]backend.ConsultationHistoryItem, error)
	limit       func(ctx context.Context) (*backend.ConsultationLimit, error)
	sendMessage func(ctx context.Context, message string) (*backend.MessageResult, error)
}

func (m *mockConsultationAPI) Goals(ctx context.Context) ([]backend.Goal, error) {
	if m.goals == nil {
		return nil, nil
	}
	return m.goals(ctx)
}

func (m *mockConsultationAPI) CreateGoal(ctx context.Context, req backend.GoalRequest) error {
	if m.createGoal == nil {
		return nil
	}
	return m.createGoal(ctx, req)
}

func (m *mockConsultationAPI) UpdateGoal(ctx context.Context, id int64, req backend.GoalRequest) error {
	if m.updateGoal == nil {
		return nil
	}
	return m.updateGoal(ctx, id, req)
}

func (m *mockConsultationAPI) DeleteGoal(ctx context.Context, id int64) error {
	if m.deleteGoal == nil {
		return nil
	}
	return m.deleteGoal(ctx, id)
}

func (m *mockConsultationAPI) Consultation(ctx context.Context) (*backend.ConsultationResult, error) {
	if m.consult == nil {
		return &backend.ConsultationResult{}, nil
	}
	return m.consult(ctx)
}

func (m *mockConsultationAPI) ConsultationHistory(ctx context.Context) ([]backend.ConsultationHistoryItem, error) {
	if m.history == nil {
		return nil, nil
	}
	return m.history(ctx)
}

func (m *mockConsultationAPI) ConsultationLimit(ctx context.Context) (*backend.ConsultationLimit, error) {
	if m.limit == nil {
		return nil, nil
	}
	return m.limit(ctx)
}

func (m *mockConsultationAPI) SendMessage(ctx context.Context, message string) (*backend.MessageResult, error) {
	if m.sendMessage == nil {
		return &backend.MessageResult{}, nil
	}
	return m.sendMessage(ctx, message)
}
