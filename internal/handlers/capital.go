package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
	"finadvisor/internal/charts"
	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/report"
)

// CapitalHandler renders the combined assets/liabilities screen and owns
// the capital mutations.
type CapitalHandler struct {
	api backend.CapitalAPI
}

// NewCapitalHandler creates a new capital handler.
func NewCapitalHandler(api backend.CapitalAPI) *CapitalHandler {
	return &CapitalHandler{api: api}
}

type capitalListQuery struct {
	Kind string `form:"kind" binding:"omitempty,oneof=all assets liabilities"`
	Q    string `form:"q"`
}

type capitalView struct {
	Title  string
	Active string
	Notice string
	Error  string

	Kind  string
	Query string

	AssetTypes     []string
	LiabilityTypes []string

	AssetTotal     decimal.Decimal
	LiabilityTotal decimal.Decimal
	Net            decimal.Decimal

	Items []report.CapitalItem
	Count int

	AssetShares []charts.LabeledSegment
}

// Colors for the asset-structure pie, cycled per type.
var pieFills = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#8B5CF6",
	"#EC4899", "#14B8A6", "#F97316", "#6366F1",
}

// Show handles GET /capital. Assets and liabilities are independent lists,
// so the two fetches fan out; either failure renders the screen error
// because every card mixes both sides.
func (h *CapitalHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	var params capitalListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		params = capitalListQuery{}
	}

	view := capitalView{
		Title:          "Капитал",
		Active:         "capital",
		Kind:           params.Kind,
		Query:          params.Q,
		AssetTypes:     report.AssetTypes,
		LiabilityTypes: report.LiabilityTypes,
		AssetTotal:     decimal.Zero,
		LiabilityTotal: decimal.Zero,
		Net:            decimal.Zero,
	}
	view.Notice, view.Error = flash(c)
	if view.Kind == "" {
		view.Kind = "all"
	}

	var (
		wg           sync.WaitGroup
		assets       []backend.Asset
		liabilities  []backend.Liability
		assetErr     error
		liabilityErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		assets, assetErr = h.api.Assets(ctx)
	}()
	go func() {
		defer wg.Done()
		liabilities, liabilityErr = h.api.Liabilities(ctx)
	}()
	wg.Wait()

	if assetErr != nil || liabilityErr != nil {
		err := assetErr
		if err == nil {
			err = liabilityErr
		}
		if view.Error == "" {
			view.Error = errorMessage(err)
		}
		c.HTML(http.StatusOK, "capital", view)
		return
	}

	view.AssetTotal, view.LiabilityTotal, view.Net = report.CapitalTotals(assets, liabilities)

	merged := report.MergeCapital(assets, liabilities)
	view.Items = report.FilterCapital(merged, report.CapitalKind(view.Kind), params.Q)
	view.Count = len(view.Items)

	assetItems := report.FilterCapital(merged, report.KindAssets, "")
	shares := report.SharesByType(assetItems)
	slices := make([]charts.Slice, 0, len(shares))
	for i, share := range shares {
		total, _ := share.Total.Float64()
		slices = append(slices, charts.Slice{
			Label: share.Type,
			Value: total,
			Fill:  pieFills[i%len(pieFills)],
		})
	}
	view.AssetShares = charts.PieSegments(slices)

	c.HTML(http.StatusOK, "capital", view)
}

type capitalForm struct {
	Kind           string `form:"kind" binding:"required,capital_kind"`
	Title          string `form:"title" binding:"required"`
	Type           string `form:"type" binding:"required"`
	Amount         string `form:"amount" binding:"required"`
	MonthlyPayment string `form:"monthly_payment"`
}

func (f capitalForm) amounts() (amount, payment decimal.Decimal, err error) {
	amount, convErr := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if convErr != nil || !amount.IsPositive() {
		return decimal.Zero, decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "Введите сумму больше нуля")
	}
	payment = decimal.Zero
	if raw := strings.TrimSpace(f.MonthlyPayment); raw != "" {
		payment, convErr = decimal.NewFromString(raw)
		if convErr != nil || payment.IsNegative() {
			return decimal.Zero, decimal.Zero, apperrors.WithMessage(apperrors.ErrInvalidInput, "Некорректный ежемесячный платёж")
		}
	}
	return amount, payment, nil
}

// Create handles POST /capital. The kind field routes the payload to the
// asset or liability endpoint.
func (h *CapitalHandler) Create(c *gin.Context) {
	var form capitalForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/capital", apperrors.ErrInvalidInput)
		return
	}
	amount, payment, err := form.amounts()
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}

	ctx := c.Request.Context()
	if form.Kind == "asset" {
		err = h.api.CreateAsset(ctx, backend.AssetRequest{
			Title:  strings.TrimSpace(form.Title),
			Type:   form.Type,
			Amount: amount,
		})
	} else {
		err = h.api.CreateLiability(ctx, backend.LiabilityRequest{
			Title:          strings.TrimSpace(form.Title),
			Type:           form.Type,
			Amount:         amount,
			MonthlyPayment: payment,
		})
	}
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}
	redirectWithNotice(c, "/capital", "Запись добавлена")
}

// Update handles POST /capital/:id.
func (h *CapitalHandler) Update(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}
	var form capitalForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/capital", apperrors.ErrInvalidInput)
		return
	}
	amount, payment, err := form.amounts()
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}

	ctx := c.Request.Context()
	if form.Kind == "asset" {
		err = h.api.UpdateAsset(ctx, id, backend.AssetRequest{
			Title:  strings.TrimSpace(form.Title),
			Type:   form.Type,
			Amount: amount,
		})
	} else {
		err = h.api.UpdateLiability(ctx, id, backend.LiabilityRequest{
			Title:          strings.TrimSpace(form.Title),
			Type:           form.Type,
			Amount:         amount,
			MonthlyPayment: payment,
		})
	}
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}
	redirectWithNotice(c, "/capital", "Запись обновлена")
}

type capitalDeleteForm struct {
	Kind string `form:"kind" binding:"required,capital_kind"`
}

// Delete handles POST /capital/:id/delete.
func (h *CapitalHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}
	var form capitalDeleteForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/capital", apperrors.ErrInvalidInput)
		return
	}

	ctx := c.Request.Context()
	if form.Kind == "asset" {
		err = h.api.DeleteAsset(ctx, id)
	} else {
		err = h.api.DeleteLiability(ctx, id)
	}
	if err != nil {
		redirectWithError(c, "/capital", err)
		return
	}
	redirectWithNotice(c, "/capital", "Запись удалена")
}
