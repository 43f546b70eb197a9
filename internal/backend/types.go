package backend

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense record. The sign of Amount
// carries the type: negative is an expense, positive is an income.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool { return t.Amount.IsPositive() }

// Category is a transaction category. Type is the backend's own
// classification, "Доход" or "Расход".
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryTypeIncome and CategoryTypeExpense are the backend's category
// type labels.
const (
	CategoryTypeIncome  = "Доход"
	CategoryTypeExpense = "Расход"
)

// Stats is the server-computed monthly summary.
type Stats struct {
	Month              int                        `json:"month,omitempty"`
	Year               int                        `json:"year,omitempty"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	TotalExpense       decimal.Decimal            `json:"total_expense"`
	IncomeByCategory   map[string]decimal.Decimal `json:"income_by_category"`
	ExpenseByCategory  map[string]decimal.Decimal `json:"expense_by_category"`
	ReserveRecommended decimal.Decimal            `json:"reserve_recommended"`
	Insight            string                     `json:"insight"`
}

// MonthlyBalanceItem is one month of the 12-month balance series.
type MonthlyBalanceItem struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Label      string          `json:"label"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Difference decimal.Decimal `json:"difference"`
}

// Asset is an owned item of capital.
type Asset struct {
	AssetID   int64           `json:"asset_id"`
	Title     string          `json:"title"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	UpdatedAt *time.Time      `json:"updated_at"`
}

// Liability is a debt.
type Liability struct {
	LiabilityID    int64           `json:"liability_id"`
	Title          string          `json:"title"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	UpdatedAt      *time.Time      `json:"updated_at"`
}

// CapitalSummary holds the server-computed capital totals.
type CapitalSummary struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Net         decimal.Decimal `json:"net"`
}

// CapitalHistoryItem is one month of the capital history series.
type CapitalHistoryItem struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Label       string          `json:"label"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Net         decimal.Decimal `json:"net"`
}

// Goal is a savings goal. Current is server-computed from liquid capital;
// the client only renders the ratio.
type Goal struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Target      decimal.Decimal `json:"target"`
	Current     decimal.Decimal `json:"current"`
	Description string          `json:"description"`
}

// GoalsInsight is the server-generated commentary on goal progress.
type GoalsInsight struct {
	Insight string `json:"insight"`
}

// ConsultationHistoryItem is one saved consultation.
type ConsultationHistoryItem struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

// ConsultationResult is the response of GET /api/consultation.
type ConsultationResult struct {
	Consultation string `json:"consultation"`
	Error        string `json:"error,omitempty"`
	LimitReached bool   `json:"limit_reached,omitempty"`
	RequestsUsed int    `json:"requests_used,omitempty"`
}

// ConsultationLimit is the response of GET /api/consultation/limit.
type ConsultationLimit struct {
	RequestsUsed int  `json:"requests_used"`
	LimitReached bool `json:"limit_reached"`
}

// MonthlyConsultationLimit is the backend's monthly quota, shown as
// "used/5" in the limit banner.
const MonthlyConsultationLimit = 5

// AddedGoal is a goal extracted by the backend from a free-text message.
type AddedGoal struct {
	Title  string          `json:"title"`
	Target decimal.Decimal `json:"target"`
}

// MessageResult is the response of POST /api/consultation/message.
type MessageResult struct {
	GoalsAdded []AddedGoal `json:"goals_added"`
	Reply      string      `json:"reply"`
}

// ImportCandidate is one parsed row of an uploaded bank statement. The
// apply call forwards candidates back to the backend unmodified, so the
// date stays a raw string and the amount a decimal that round-trips
// exactly.
type ImportCandidate struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  int64           `json:"category_id"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
}

// ImportResult is the response of POST /api/transactions/import.
type ImportResult struct {
	Transactions []ImportCandidate `json:"transactions"`
	Errors       []string          `json:"errors"`
}

// Import apply modes: append the parsed rows, or delete existing
// transactions within the imported date range and insert the parsed rows.
const (
	ImportModeAdd     = "add"
	ImportModeReplace = "replace"
)

// EnvInfo is the response of GET /api/env-info, served only in test
// deployments.
type EnvInfo struct {
	Environment string `json:"environment"`
	DBName      string `json:"db_name"`
	DBHost      string `json:"db_host"`
}

// TransactionRequest is the payload for creating or updating a transaction.
type TransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  int64           `json:"category_id"`
	Description *string         `json:"description"`
}

// TransactionQuery holds the list filters forwarded to the backend.
// Month of zero means all periods.
type TransactionQuery struct {
	Month    int
	Year     int
	Type     string // "income", "expense" or empty for all
	Category string
	Limit    int
}

// GoalRequest is the payload for creating or updating a goal.
type GoalRequest struct {
	Title       string          `json:"title"`
	Target      decimal.Decimal `json:"target"`
	Description *string         `json:"description"`
}

// AssetRequest is the payload for creating or updating an asset.
type AssetRequest struct {
	Title  string          `json:"title"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// LiabilityRequest is the payload for creating or updating a liability.
type LiabilityRequest struct {
	Title          string          `json:"title"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}
