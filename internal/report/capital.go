package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
)

// Default type taxonomies for the capital form dropdowns. These are
// placeholders only: the backend accepts free-text types, and whatever it
// already stored for an item is preserved on edit.
var (
	AssetTypes = []string{
		"Депозит", "Акции", "Облигации", "Недвижимость", "Наличные",
		"Банковский счёт", "Криптовалюта", "Драгоценные металлы", "Прочее",
	}
	LiabilityTypes = []string{
		"Кредит", "Ипотека", "Займ", "Кредитная карта", "Рассрочка", "Прочее",
	}
)

// CapitalKind narrows the merged capital list.
type CapitalKind string

const (
	KindAll         CapitalKind = "all"
	KindAssets      CapitalKind = "assets"
	KindLiabilities CapitalKind = "liabilities"
)

// CapitalItem is an asset or liability in the merged screen list.
type CapitalItem struct {
	ID             int64
	Title          string
	Type           string
	Amount         decimal.Decimal
	MonthlyPayment decimal.Decimal
	IsAsset        bool
	UpdatedAt      *time.Time
}

// MergeCapital flattens assets and liabilities into one list for the
// combined capital screen.
func MergeCapital(assets []backend.Asset, liabilities []backend.Liability) []CapitalItem {
	items := make([]CapitalItem, 0, len(assets)+len(liabilities))
	for _, a := range assets {
		items = append(items, CapitalItem{
			ID:        a.AssetID,
			Title:     a.Title,
			Type:      a.Type,
			Amount:    a.Amount,
			IsAsset:   true,
			UpdatedAt: a.UpdatedAt,
		})
	}
	for _, l := range liabilities {
		items = append(items, CapitalItem{
			ID:             l.LiabilityID,
			Title:          l.Title,
			Type:           l.Type,
			Amount:         l.Amount,
			MonthlyPayment: l.MonthlyPayment,
			IsAsset:        false,
			UpdatedAt:      l.UpdatedAt,
		})
	}
	return items
}

// FilterCapital narrows the merged list by kind and search query. Search
// matches title, type or stringified amount, case-insensitive.
func FilterCapital(items []CapitalItem, kind CapitalKind, search string) []CapitalItem {
	query := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]CapitalItem, 0, len(items))
	for _, item := range items {
		if kind == KindAssets && !item.IsAsset {
			continue
		}
		if kind == KindLiabilities && item.IsAsset {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Type), query) &&
			!strings.Contains(item.Amount.String(), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// CapitalTotals sums the fetched lists. Net is assets minus liabilities;
// this is plain arithmetic over the lists, not the backend's liquid
// capital.
func CapitalTotals(assets []backend.Asset, liabilities []backend.Liability) (assetTotal, liabilityTotal, net decimal.Decimal) {
	assetTotal, liabilityTotal = decimal.Zero, decimal.Zero
	for _, a := range assets {
		assetTotal = assetTotal.Add(a.Amount)
	}
	for _, l := range liabilities {
		liabilityTotal = liabilityTotal.Add(l.Amount)
	}
	return assetTotal, liabilityTotal, assetTotal.Sub(liabilityTotal)
}

// TypeShare is one type's slice of a capital total.
type TypeShare struct {
	Type    string
	Total   decimal.Decimal
	Percent float64
}

// SharesByType sums the given items per type and returns shares of the
// grand total, descending. Items with non-positive amounts are skipped so
// the share bars never render negative widths.
func SharesByType(items []CapitalItem) []TypeShare {
	byType := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	total := decimal.Zero
	for _, item := range items {
		if !item.Amount.IsPositive() {
			continue
		}
		name := item.Type
		if name == "" {
			name = "—"
		}
		if _, ok := byType[name]; !ok {
			order = append(order, name)
		}
		byType[name] = byType[name].Add(item.Amount)
		total = total.Add(item.Amount)
	}

	shares := make([]TypeShare, 0, len(order))
	for _, name := range order {
		share := TypeShare{Type: name, Total: byType[name]}
		if total.IsPositive() {
			ratio, _ := share.Total.Div(total).Float64()
			share.Percent = ratio * 100
		}
		shares = append(shares, share)
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Total.GreaterThan(shares[j].Total)
	})
	return shares
}
