package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Transactions fetches the transaction list with the given filters. The
// backend caps the list at the supplied limit; the client never pages
// through more.
func (c *Client) Transactions(ctx context.Context, q TransactionQuery) ([]Transaction, error) {
	query := url.Values{}
	if q.Limit <= 0 {
		q.Limit = 1000
	}
	query.Set("limit", strconv.Itoa(q.Limit))
	if q.Month != 0 {
		query.Set("month", strconv.Itoa(q.Month))
		query.Set("year", strconv.Itoa(q.Year))
	}
	if q.Type != "" {
		query.Set("type", q.Type)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}

	var transactions []Transaction
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/transactions", query, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction creates a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, req TransactionRequest) error {
	return c.do(ctx, classRequest, http.MethodPost, "/api/transactions", nil, req, nil)
}

// UpdateTransaction updates an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, req TransactionRequest) error {
	return c.do(ctx, classRequest, http.MethodPut, fmt.Sprintf("/api/transactions/%d", id), nil, req, nil)
}

// DeleteTransaction deletes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, classRequest, http.MethodDelete, fmt.Sprintf("/api/transactions/%d", id), nil, nil, nil)
}

// Categories fetches the category taxonomy.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ImportStatement uploads a bank statement for parsing and returns the
// candidate transactions plus parse warnings. Nothing is persisted until
// ApplyImport.
func (c *Client) ImportStatement(ctx context.Context, filename string, file io.Reader) (*ImportResult, error) {
	var result ImportResult
	if err := c.upload(ctx, "/api/transactions/import", filename, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyImport forwards previously parsed candidates back to the backend
// with the chosen merge mode. The candidate list is sent exactly as it was
// received.
func (c *Client) ApplyImport(ctx context.Context, mode string, candidates []ImportCandidate) error {
	body := struct {
		Mode         string            `json:"mode"`
		Transactions []ImportCandidate `json:"transactions"`
	}{Mode: mode, Transactions: candidates}

	return c.do(ctx, classRequest, http.MethodPost, "/api/transactions/import/apply", nil, body, nil)
}
