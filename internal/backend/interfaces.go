package backend

import (
	"context"
	"io"
)

// Narrow per-screen views of the client, so handlers can be tested against
// function-field mocks.

// DashboardAPI is the read surface of the dashboard screen.
type DashboardAPI interface {
	Stats(ctx context.Context, month, year int) (*Stats, error)
	MonthlyBalance(ctx context.Context) ([]MonthlyBalanceItem, error)
	CapitalSummary(ctx context.Context) (*CapitalSummary, error)
	CapitalHistory(ctx context.Context) ([]CapitalHistoryItem, error)
	Goals(ctx context.Context) ([]Goal, error)
	GoalsInsight(ctx context.Context) (*GoalsInsight, error)
	ConsultationHistory(ctx context.Context) ([]ConsultationHistoryItem, error)
}

// TransactionsAPI covers the transactions screen including statement
// import.
type TransactionsAPI interface {
	Transactions(ctx context.Context, q TransactionQuery) ([]Transaction, error)
	Categories(ctx context.Context) ([]Category, error)
	CreateTransaction(ctx context.Context, req TransactionRequest) error
	UpdateTransaction(ctx context.Context, id int64, req TransactionRequest) error
	DeleteTransaction(ctx context.Context, id int64) error
	ImportStatement(ctx context.Context, filename string, file io.Reader) (*ImportResult, error)
	ApplyImport(ctx context.Context, mode string, candidates []ImportCandidate) error
}

// CapitalAPI covers the capital screen.
type CapitalAPI interface {
	Assets(ctx context.Context) ([]Asset, error)
	Liabilities(ctx context.Context) ([]Liability, error)
	CreateAsset(ctx context.Context, req AssetRequest) error
	UpdateAsset(ctx context.Context, id int64, req AssetRequest) error
	DeleteAsset(ctx context.Context, id int64) error
	CreateLiability(ctx context.Context, req LiabilityRequest) error
	UpdateLiability(ctx context.Context, id int64, req LiabilityRequest) error
	DeleteLiability(ctx context.Context, id int64) error
}

// ConsultationAPI covers the consultation screen: goals plus the AI
// surface.
type ConsultationAPI interface {
	Goals(ctx context.Context) ([]Goal, error)
	CreateGoal(ctx context.Context, req GoalRequest) error
	UpdateGoal(ctx context.Context, id int64, req GoalRequest) error
	DeleteGoal(ctx context.Context, id int64) error
	Consultation(ctx context.Context) (*ConsultationResult, error)
	ConsultationHistory(ctx context.Context) ([]ConsultationHistoryItem, error)
	ConsultationLimit(ctx context.Context) (*ConsultationLimit, error)
	SendMessage(ctx context.Context, message string) (*MessageResult, error)
}

var (
	_ DashboardAPI    = (*Client)(nil)
	_ TransactionsAPI = (*Client)(nil)
	_ CapitalAPI      = (*Client)(nil)
	_ ConsultationAPI = (*Client)(nil)
)
