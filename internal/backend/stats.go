package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Stats fetches the server-computed summary for one month.
func (c *Client) Stats(ctx context.Context, month, year int) (*Stats, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))

	var stats Stats
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/stats", query, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MonthlyBalance fetches income, expense and difference for the last 12
// months.
func (c *Client) MonthlyBalance(ctx context.Context) ([]MonthlyBalanceItem, error) {
	var items []MonthlyBalanceItem
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/stats/monthly", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
