package backend

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"finadvisor/internal/testutil"
)

func TestSoftFailure(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		failed bool
	}{
		{"plain_success", "Ваш финансовый план выглядит сбалансированно.", false},
		{"timeout_marker", "⏱️ Генерация заняла слишком много времени", true},
		{"cross_marker", "❌ Не удалось построить консультацию", true},
		{"error_word", "Произошла ошибка при генерации", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &ConsultationResult{Consultation: tt.text}
			text, failed := result.SoftFailure()
			if failed != tt.failed {
				t.Fatalf("SoftFailure() = %v, want %v", failed, tt.failed)
			}
			if failed && text != tt.text {
				t.Errorf("expected failure text %q, got %q", tt.text, text)
			}
		})
	}
}

func TestConsultation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, consultationHandler(`{"consultation":"Совет: откладывайте 10%"}`), Options{})
		result, err := client.Consultation(context.Background())
		testutil.AssertNoError(t, err)

		if result.Consultation != "Совет: откладывайте 10%" {
			t.Errorf("unexpected consultation text %q", result.Consultation)
		}
		if result.LimitReached {
			t.Error("expected limit_reached to be false")
		}
	})

	t.Run("limit_reached_payload", func(t *testing.T) {
		client, _ := newTestClient(t, consultationHandler(`{"consultation":"","limit_reached":true,"requests_used":5}`), Options{})
		result, err := client.Consultation(context.Background())
		testutil.AssertNoError(t, err)

		if !result.LimitReached || result.RequestsUsed != 5 {
			t.Errorf("expected limit reached with 5 used, got %+v", result)
		}
	})
}

func TestSendMessage(t *testing.T) {
	client, _ := newTestClient(t, consultationHandler(
		`{"reply":"Цель добавлена","goals_added":[{"title":"Машина","target":500000}]}`,
	), Options{})

	result, err := client.SendMessage(context.Background(), "хочу накопить 500000 на машину")
	testutil.AssertNoError(t, err)

	if result.Reply != "Цель добавлена" {
		t.Errorf("unexpected reply %q", result.Reply)
	}
	if len(result.GoalsAdded) != 1 {
		t.Fatalf("expected 1 added goal, got %d", len(result.GoalsAdded))
	}
	if !result.GoalsAdded[0].Target.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("expected target 500000, got %s", result.GoalsAdded[0].Target)
	}
}

func TestConsultationLimit(t *testing.T) {
	client, _ := newTestClient(t, consultationHandler(`{"requests_used":3,"limit_reached":false}`), Options{})
	limit, err := client.ConsultationLimit(context.Background())
	testutil.AssertNoError(t, err)

	if limit.RequestsUsed != 3 || limit.LimitReached {
		t.Errorf("unexpected limit %+v", limit)
	}
}

func consultationHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/env-info" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	})
}
