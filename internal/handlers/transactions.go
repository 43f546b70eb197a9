package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/pagination"
	"finadvisor/internal/report"
)

const importPreviewPageSize = 20

// TransactionsHandler renders the transactions screen and owns the
// transaction mutations, including statement import.
type TransactionsHandler struct {
	api backend.TransactionsAPI
	now func() time.Time
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(api backend.TransactionsAPI) *TransactionsHandler {
	return &TransactionsHandler{api: api, now: time.Now}
}

type transactionListQuery struct {
	Period   string `form:"period"`
	Type     string `form:"type" binding:"omitempty,oneof=all income expense"`
	Category string `form:"category"`
	Q        string `form:"q"`
	View     string `form:"view" binding:"omitempty,oneof=all income expense"`
}

type transactionsView struct {
	Title  string
	Active string
	Notice string
	Error  string

	Periods  []report.Period
	Period   string
	Type     string
	Category string
	Query    string
	View     string

	IncomeCategories  []backend.Category
	ExpenseCategories []backend.Category
	FilterCategories  []string

	Totals report.Totals
	Groups []report.MonthGroup
	Count  int
}

// List handles GET /transactions. Period, type and category narrowing go
// to the backend; search and the totals-card toggle are applied over the
// fetched list. Totals always cover both types of the searched set, so the
// income and expense cards stay comparable whichever card is active.
func (h *TransactionsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var params transactionListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		params = transactionListQuery{}
	}

	view := transactionsView{
		Title:    "Транзакции",
		Active:   "transactions",
		Periods:  report.PeriodOptions(h.now(), 12),
		Period:   params.Period,
		Type:     params.Type,
		Category: params.Category,
		Query:    params.Q,
		View:     params.View,
	}
	view.Notice, view.Error = flash(c)
	if view.Type == "" {
		view.Type = "all"
	}
	if view.View == "" {
		view.View = "all"
	}
	if view.Period == "" {
		now := h.now()
		view.Period = fmt.Sprintf("%d-%d", now.Year(), int(now.Month()))
	}

	query := backend.TransactionQuery{Category: params.Category}
	if view.Period != "all" {
		fmt.Sscanf(view.Period, "%d-%d", &query.Year, &query.Month)
	}
	if view.Type == "income" || view.Type == "expense" {
		query.Type = view.Type
	}

	transactions, err := h.api.Transactions(ctx, query)
	if err != nil {
		if view.Error == "" {
			view.Error = errorMessage(err)
		}
		c.HTML(http.StatusOK, "transactions", view)
		return
	}

	categories := fetchQuiet(ctx, "categories", h.api.Categories)
	for _, cat := range categories {
		switch cat.Type {
		case backend.CategoryTypeIncome:
			view.IncomeCategories = append(view.IncomeCategories, cat)
		default:
			view.ExpenseCategories = append(view.ExpenseCategories, cat)
		}
		view.FilterCategories = append(view.FilterCategories, cat.Name)
	}

	searched := report.FilterTransactions(transactions, report.Filter{
		Type:   report.TypeAll,
		Search: params.Q,
	})
	view.Totals = report.SumTransactions(searched)

	listed := report.FilterTransactions(searched, report.Filter{
		Type: report.TypeFilter(view.View),
	})
	view.Groups = report.GroupByMonth(listed)
	view.Count = len(listed)

	c.HTML(http.StatusOK, "transactions", view)
}

type transactionForm struct {
	Amount      string `form:"amount" binding:"required"`
	CategoryID  int64  `form:"category_id" binding:"required"`
	Type        string `form:"type" binding:"required,tx_type"`
	Description string `form:"description"`
}

// request converts the form into the backend payload. The sign carries the
// type: expenses are stored negative.
func (f transactionForm) request() (backend.TransactionRequest, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil || !amount.IsPositive() {
		return backend.TransactionRequest{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Введите сумму больше нуля")
	}
	if f.Type == "expense" {
		amount = amount.Neg()
	}
	description := strings.TrimSpace(f.Description)
	return backend.TransactionRequest{
		Amount:      amount,
		CategoryID:  f.CategoryID,
		Description: &description,
	}, nil
}

// Create handles POST /transactions.
func (h *TransactionsHandler) Create(c *gin.Context) {
	var form transactionForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/transactions", apperrors.ErrInvalidInput)
		return
	}
	req, err := form.request()
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	if err := h.api.CreateTransaction(c.Request.Context(), req); err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	redirectWithNotice(c, "/transactions", "Транзакция добавлена")
}

// Update handles POST /transactions/:id.
func (h *TransactionsHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	var form transactionForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/transactions", apperrors.ErrInvalidInput)
		return
	}
	req, err := form.request()
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	if err := h.api.UpdateTransaction(c.Request.Context(), id, req); err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	redirectWithNotice(c, "/transactions", "Транзакция обновлена")
}

// Delete handles POST /transactions/:id/delete.
func (h *TransactionsHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	if err := h.api.DeleteTransaction(c.Request.Context(), id); err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	redirectWithNotice(c, "/transactions", "Транзакция удалена")
}

var statementExtensions = map[string]bool{".xlsx": true, ".xls": true}

type importPreviewView struct {
	Title  string
	Active string
	Error  string

	Payload string
	Rows    pagination.PageResponse[backend.ImportCandidate]
	Errors  []string
}

// Import handles POST /transactions/import: uploads the statement, lets
// the backend parse it, and shows the preview of parsed rows. The parsed
// rows travel to the preview page as an embedded JSON payload so the apply
// step forwards exactly what the backend returned.
func (h *TransactionsHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		redirectWithError(c, "/transactions", apperrors.WithMessage(apperrors.ErrInvalidInput, "Выберите файл выписки"))
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !statementExtensions[ext] {
		redirectWithError(c, "/transactions", apperrors.ErrInvalidFile)
		return
	}

	src, err := file.Open()
	if err != nil {
		redirectWithError(c, "/transactions", apperrors.Wrap(apperrors.ErrInvalidFile, err))
		return
	}
	defer src.Close()

	result, err := h.api.ImportStatement(c.Request.Context(), file.Filename, src)
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	if len(result.Transactions) == 0 {
		redirectFlash(c, "/transactions", "err", "В файле не найдено ни одной транзакции")
		return
	}
	h.renderPreview(c, result.Transactions, result.Errors, 1)
}

type importPreviewForm struct {
	Payload string `form:"payload" binding:"required"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
}

// ImportPreview handles POST /transactions/import/preview: pages through
// the already-parsed rows without re-uploading the file.
func (h *TransactionsHandler) ImportPreview(c *gin.Context) {
	var form importPreviewForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/transactions", apperrors.ErrInvalidInput)
		return
	}
	candidates, err := decodeCandidates(form.Payload)
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	page := form.Page
	if page == 0 {
		page = 1
	}
	h.renderPreview(c, candidates, nil, page)
}

type importApplyForm struct {
	Payload string `form:"payload" binding:"required"`
	Mode    string `form:"mode" binding:"required,import_mode"`
}

// ImportApply handles POST /transactions/import/apply.
func (h *TransactionsHandler) ImportApply(c *gin.Context) {
	var form importApplyForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/transactions", apperrors.ErrInvalidInput)
		return
	}
	candidates, err := decodeCandidates(form.Payload)
	if err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}
	if err := h.api.ApplyImport(c.Request.Context(), form.Mode, candidates); err != nil {
		redirectWithError(c, "/transactions", err)
		return
	}

	notice := fmt.Sprintf("Добавлено транзакций: %d", len(candidates))
	if form.Mode == backend.ImportModeReplace {
		notice = fmt.Sprintf("Транзакции периода заменены: %d", len(candidates))
	}
	redirectWithNotice(c, "/transactions", notice)
}

func (h *TransactionsHandler) renderPreview(c *gin.Context, candidates []backend.ImportCandidate, parseErrors []string, page int) {
	payload, err := json.Marshal(candidates)
	if err != nil {
		redirectWithError(c, "/transactions", apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}
	view := importPreviewView{
		Title:   "Импорт выписки",
		Active:  "transactions",
		Payload: string(payload),
		Rows:    pagination.Page(candidates, pagination.PageRequest{Page: page, PageSize: importPreviewPageSize}),
		Errors:  parseErrors,
	}
	c.HTML(http.StatusOK, "import_preview", view)
}

func decodeCandidates(payload string) ([]backend.ImportCandidate, error) {
	var candidates []backend.ImportCandidate
	if err := json.Unmarshal([]byte(payload), &candidates); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Данные импорта повреждены, загрузите файл заново")
	}
	return candidates, nil
}
