package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/testutil"
)

func capitalRouter(t *testing.T, api backend.CapitalAPI) *gin.Engine {
	t.Helper()
	handler := NewCapitalHandler(api)

	router := newRouter(t)
	router.GET("/capital", handler.Show)
	router.POST("/capital", handler.Create)
	router.POST("/capital/:id", handler.Update)
	router.POST("/capital/:id/delete", handler.Delete)
	return router
}

func sampleCapitalAPI() *mockCapitalAPI {
	return &mockCapitalAPI{
		assets: func(ctx context.Context) ([]backend.Asset, error) {
			return []backend.Asset{
				{AssetID: 1, Title: "Вклад", Type: "Депозит", Amount: decimal.NewFromInt(100000)},
				{AssetID: 2, Title: "Брокерский счёт", Type: "Акции", Amount: decimal.NewFromInt(50000)},
			}, nil
		},
		liabilities: func(ctx context.Context) ([]backend.Liability, error) {
			return []backend.Liability{
				{LiabilityID: 5, Title: "Кредит", Type: "Кредит", Amount: decimal.NewFromInt(30000), MonthlyPayment: decimal.NewFromInt(5000)},
			}, nil
		},
	}
}

func TestCapitalShow(t *testing.T) {
	t.Run("renders_totals_and_items", func(t *testing.T) {
		w := doGet(t, capitalRouter(t, sampleCapitalAPI()), "/capital")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		testutil.AssertContains(t, body, "150 000")
		testutil.AssertContains(t, body, "30 000")
		testutil.AssertContains(t, body, "120 000")
		testutil.AssertContains(t, body, "Вклад")
		testutil.AssertContains(t, body, "Кредит")
		// Asset structure shares
		testutil.AssertContains(t, body, "Депозит")
	})

	t.Run("kind_filter_narrows_list", func(t *testing.T) {
		w := doGet(t, capitalRouter(t, sampleCapitalAPI()), "/capital?kind=liabilities")

		body := w.Body.String()
		testutil.AssertContains(t, body, "Кредит")
		testutil.AssertContains(t, body, "Записи (1)")
	})

	t.Run("either_fetch_error_fails_screen", func(t *testing.T) {
		api := sampleCapitalAPI()
		api.liabilities = func(ctx context.Context) ([]backend.Liability, error) {
			return nil, apperrors.WithMessage(apperrors.ErrBackend, "Обязательства недоступны")
		}
		w := doGet(t, capitalRouter(t, api), "/capital")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		testutil.AssertContains(t, w.Body.String(), "Обязательства недоступны")
	})
}

func TestCapitalCreate(t *testing.T) {
	t.Run("asset_routes_to_asset_endpoint", func(t *testing.T) {
		var got backend.AssetRequest
		api := sampleCapitalAPI()
		api.createAsset = func(ctx context.Context, req backend.AssetRequest) error {
			got = req
			return nil
		}
		w := doPost(t, capitalRouter(t, api), "/capital", url.Values{
			"kind":   {"asset"},
			"title":  {"Новый вклад"},
			"type":   {"Депозит"},
			"amount": {"25000"},
		})

		assertRedirect(t, w, "/capital", "notice")
		if got.Title != "Новый вклад" || !got.Amount.Equal(decimal.NewFromInt(25000)) {
			t.Errorf("unexpected asset request %+v", got)
		}
	})

	t.Run("liability_carries_monthly_payment", func(t *testing.T) {
		var got backend.LiabilityRequest
		api := sampleCapitalAPI()
		api.createLiability = func(ctx context.Context, req backend.LiabilityRequest) error {
			got = req
			return nil
		}
		w := doPost(t, capitalRouter(t, api), "/capital", url.Values{
			"kind":            {"liability"},
			"title":           {"Ипотека"},
			"type":            {"Ипотека"},
			"amount":          {"3000000"},
			"monthly_payment": {"45000"},
		})

		assertRedirect(t, w, "/capital", "notice")
		if !got.MonthlyPayment.Equal(decimal.NewFromInt(45000)) {
			t.Errorf("expected monthly payment 45000, got %s", got.MonthlyPayment)
		}
	})

	t.Run("rejects_unknown_kind", func(t *testing.T) {
		w := doPost(t, capitalRouter(t, sampleCapitalAPI()), "/capital", url.Values{
			"kind":   {"portfolio"},
			"title":  {"X"},
			"type":   {"Y"},
			"amount": {"10"},
		})
		assertRedirect(t, w, "/capital", "err")
	})

	t.Run("rejects_negative_payment", func(t *testing.T) {
		w := doPost(t, capitalRouter(t, sampleCapitalAPI()), "/capital", url.Values{
			"kind":            {"liability"},
			"title":           {"Кредит"},
			"type":            {"Кредит"},
			"amount":          {"1000"},
			"monthly_payment": {"-5"},
		})
		assertRedirect(t, w, "/capital", "err")
	})
}

func TestCapitalUpdate(t *testing.T) {
	var gotID int64
	var got backend.LiabilityRequest
	api := sampleCapitalAPI()
	api.updateLiability = func(ctx context.Context, id int64, req backend.LiabilityRequest) error {
		gotID, got = id, req
		return nil
	}
	w := doPost(t, capitalRouter(t, api), "/capital/5", url.Values{
		"kind":            {"liability"},
		"title":           {"Кредит"},
		"type":            {"Кредит"},
		"amount":          {"20000"},
		"monthly_payment": {"4000"},
	})

	assertRedirect(t, w, "/capital", "notice")
	if gotID != 5 {
		t.Errorf("expected id 5, got %d", gotID)
	}
	if !got.Amount.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("expected amount 20000, got %s", got.Amount)
	}
}

func TestCapitalDelete(t *testing.T) {
	t.Run("asset", func(t *testing.T) {
		var gotID int64
		api := sampleCapitalAPI()
		api.deleteAsset = func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		}
		w := doPost(t, capitalRouter(t, api), "/capital/2/delete", url.Values{"kind": {"asset"}})

		assertRedirect(t, w, "/capital", "notice")
		if gotID != 2 {
			t.Errorf("expected id 2, got %d", gotID)
		}
	})

	t.Run("liability", func(t *testing.T) {
		var gotID int64
		api := sampleCapitalAPI()
		api.deleteLiability = func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		}
		w := doPost(t, capitalRouter(t, api), "/capital/5/delete", url.Values{"kind": {"liability"}})

		assertRedirect(t, w, "/capital", "notice")
		if gotID != 5 {
			t.Errorf("expected id 5, got %d", gotID)
		}
	})

	t.Run("missing_kind_rejected", func(t *testing.T) {
		w := doPost(t, capitalRouter(t, sampleCapitalAPI()), "/capital/5/delete", url.Values{})
		assertRedirect(t, w, "/capital", "err")
	})
}
