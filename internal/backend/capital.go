package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Assets fetches the asset list.
func (c *Client) Assets(ctx context.Context) ([]Asset, error) {
	var assets []Asset
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/assets", nil, nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// CreateAsset creates a new asset.
func (c *Client) CreateAsset(ctx context.Context, req AssetRequest) error {
	return c.do(ctx, classRequest, http.MethodPost, "/api/assets", nil, req, nil)
}

// UpdateAsset updates an existing asset.
func (c *Client) UpdateAsset(ctx context.Context, id int64, req AssetRequest) error {
	return c.do(ctx, classRequest, http.MethodPut, fmt.Sprintf("/api/assets/%d", id), nil, req, nil)
}

// DeleteAsset deletes an asset.
func (c *Client) DeleteAsset(ctx context.Context, id int64) error {
	return c.do(ctx, classRequest, http.MethodDelete, fmt.Sprintf("/api/assets/%d", id), nil, nil, nil)
}

// Liabilities fetches the liability list.
func (c *Client) Liabilities(ctx context.Context) ([]Liability, error) {
	var liabilities []Liability
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/liabilities", nil, nil, &liabilities); err != nil {
		return nil, err
	}
	return liabilities, nil
}

// CreateLiability creates a new liability.
func (c *Client) CreateLiability(ctx context.Context, req LiabilityRequest) error {
	return c.do(ctx, classRequest, http.MethodPost, "/api/liabilities", nil, req, nil)
}

// UpdateLiability updates an existing liability.
func (c *Client) UpdateLiability(ctx context.Context, id int64, req LiabilityRequest) error {
	return c.do(ctx, classRequest, http.MethodPut, fmt.Sprintf("/api/liabilities/%d", id), nil, req, nil)
}

// DeleteLiability deletes a liability.
func (c *Client) DeleteLiability(ctx context.Context, id int64) error {
	return c.do(ctx, classRequest, http.MethodDelete, fmt.Sprintf("/api/liabilities/%d", id), nil, nil, nil)
}

// CapitalSummary fetches the current capital totals. "Liquid capital"
// semantics live behind this endpoint; the client never recomputes them.
func (c *Client) CapitalSummary(ctx context.Context) (*CapitalSummary, error) {
	var summary CapitalSummary
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/capital/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CapitalHistory fetches assets and liabilities at the end of each of the
// last 12 months.
func (c *Client) CapitalHistory(ctx context.Context) ([]CapitalHistoryItem, error) {
	var items []CapitalHistoryItem
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/capital/history", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
