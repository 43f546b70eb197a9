package backend

import (
	"context"
	"fmt"
	"net/http"
)

// Goals fetches the goal list. Goal.Current is computed server-side from
// liquid capital.
func (c *Client) Goals(ctx context.Context) ([]Goal, error) {
	var goals []Goal
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/goals", nil, nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoal creates a new goal.
func (c *Client) CreateGoal(ctx context.Context, req GoalRequest) error {
	return c.do(ctx, classRequest, http.MethodPost, "/api/goals", nil, req, nil)
}

// UpdateGoal updates a goal's fields in a single atomic call.
func (c *Client) UpdateGoal(ctx context.Context, id int64, req GoalRequest) error {
	return c.do(ctx, classRequest, http.MethodPut, fmt.Sprintf("/api/goals/%d", id), nil, req, nil)
}

// DeleteGoal deletes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.do(ctx, classRequest, http.MethodDelete, fmt.Sprintf("/api/goals/%d", id), nil, nil, nil)
}

// GoalsInsight fetches the server-generated commentary on goal progress.
func (c *Client) GoalsInsight(ctx context.Context) (*GoalsInsight, error) {
	var insight GoalsInsight
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/goals/insight", nil, nil, &insight); err != nil {
		return nil, err
	}
	return &insight, nil
}
