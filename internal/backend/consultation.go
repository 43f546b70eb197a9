package backend

import (
	"context"
	"net/http"
	"strings"
)

// softFailureMarkers are substrings the backend embeds in an HTTP-200
// consultation payload to report a generation failure. Compatibility shim:
// the contract should carry an explicit status field instead; delete this
// once it does.
var softFailureMarkers = []string{"⏱️", "❌", "ошибка"}

// SoftFailure reports whether an HTTP-200 consultation payload is actually
// a backend-reported failure, and returns the failure text.
func (r *ConsultationResult) SoftFailure() (string, bool) {
	for _, marker := range softFailureMarkers {
		if strings.Contains(r.Consultation, marker) {
			return r.Consultation, true
		}
	}
	return "", false
}

// Consultation requests an AI-generated consultation. The call uses the
// long consultation timeout class; generation regularly takes tens of
// seconds.
func (c *Client) Consultation(ctx context.Context) (*ConsultationResult, error) {
	var result ConsultationResult
	if err := c.do(ctx, classConsultation, http.MethodGet, "/api/consultation", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConsultationHistory fetches saved consultations, newest first.
func (c *Client) ConsultationHistory(ctx context.Context) ([]ConsultationHistoryItem, error) {
	var items []ConsultationHistoryItem
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/consultation/history", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ConsultationLimit fetches the monthly quota usage.
func (c *Client) ConsultationLimit(ctx context.Context) (*ConsultationLimit, error) {
	var limit ConsultationLimit
	if err := c.do(ctx, classRequest, http.MethodGet, "/api/consultation/limit", nil, nil, &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}

// SendMessage submits a free-text message from which the backend extracts
// goals. Uses the consultation timeout class; the reply is AI-generated.
func (c *Client) SendMessage(ctx context.Context, message string) (*MessageResult, error) {
	body := struct {
		Message string `json:"message"`
	}{Message: message}

	var result MessageResult
	if err := c.do(ctx, classConsultation, http.MethodPost, "/api/consultation/message", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
