// Package report derives screen aggregates from backend-fetched lists.
// Everything here is plain arithmetic over small in-memory slices; the
// lists are capped by the backend's fetch limits, so each derivation is a
// single O(n) pass recomputed per request.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"finadvisor/internal/backend"
)

// TypeFilter narrows a transaction list by sign.
type TypeFilter string

const (
	TypeAll     TypeFilter = "all"
	TypeIncome  TypeFilter = "income"
	TypeExpense TypeFilter = "expense"
)

// Filter holds the list-side transaction filters. Period and category
// narrowing happen server-side; type and search are applied here so
// already fetched lists can be re-sliced without another round trip.
type Filter struct {
	Type   TypeFilter
	Search string
}

// FilterTransactions applies the client-side filters. Search matches the
// description, category name or stringified amount, case-insensitive.
func FilterTransactions(transactions []backend.Transaction, f Filter) []backend.Transaction {
	filtered := make([]backend.Transaction, 0, len(transactions))
	query := strings.ToLower(strings.TrimSpace(f.Search))

	for _, tx := range transactions {
		switch f.Type {
		case TypeIncome:
			if !tx.IsIncome() {
				continue
			}
		case TypeExpense:
			if !tx.IsExpense() {
				continue
			}
		}
		if query != "" && !matchesSearch(tx, query) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func matchesSearch(tx backend.Transaction, query string) bool {
	return strings.Contains(strings.ToLower(tx.Description), query) ||
		strings.Contains(strings.ToLower(tx.Category), query) ||
		strings.Contains(tx.Amount.String(), query)
}

// Totals are the signed sums over a filtered list.
type Totals struct {
	Expense      decimal.Decimal
	ExpenseCount int
	Income       decimal.Decimal
	IncomeCount  int
}

// SumTransactions computes expense and income totals. The expense total is
// the absolute value of the sum of negative amounts.
func SumTransactions(transactions []backend.Transaction) Totals {
	t := Totals{Expense: decimal.Zero, Income: decimal.Zero}
	for _, tx := range transactions {
		if tx.IsExpense() {
			t.Expense = t.Expense.Add(tx.Amount.Abs())
			t.ExpenseCount++
		} else if tx.IsIncome() {
			t.Income = t.Income.Add(tx.Amount)
			t.IncomeCount++
		}
	}
	return t
}

// CategoryGroup is the transactions of one category within a month.
type CategoryGroup struct {
	Name  string
	Total decimal.Decimal
	Items []backend.Transaction
}

// MonthGroup is the transactions of one calendar month, grouped by
// category.
type MonthGroup struct {
	Key        string // YYYY-MM
	Label      string
	Total      decimal.Decimal
	Count      int
	Categories []CategoryGroup
}

// GroupByMonth groups transactions by calendar month (newest first), then
// by category within each month. Categories are ordered by descending
// absolute total; month and category totals are signed sums over their
// members.
func GroupByMonth(transactions []backend.Transaction) []MonthGroup {
	byMonth := make(map[string][]backend.Transaction)
	for _, tx := range transactions {
		key := fmt.Sprintf("%04d-%02d", tx.CreatedAt.Year(), int(tx.CreatedAt.Month()))
		byMonth[key] = append(byMonth[key], tx)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]MonthGroup, 0, len(keys))
	for _, key := range keys {
		items := byMonth[key]
		group := MonthGroup{
			Key:        key,
			Label:      monthKeyLabel(key),
			Total:      decimal.Zero,
			Count:      len(items),
			Categories: groupByCategory(items),
		}
		for _, tx := range items {
			group.Total = group.Total.Add(tx.Amount)
		}
		groups = append(groups, group)
	}
	return groups
}

func groupByCategory(transactions []backend.Transaction) []CategoryGroup {
	byCategory := make(map[string]*CategoryGroup)
	order := make([]string, 0)
	for _, tx := range transactions {
		name := tx.Category
		if name == "" {
			name = "—"
		}
		group, ok := byCategory[name]
		if !ok {
			group = &CategoryGroup{Name: name, Total: decimal.Zero}
			byCategory[name] = group
			order = append(order, name)
		}
		group.Total = group.Total.Add(tx.Amount)
		group.Items = append(group.Items, tx)
	}

	groups := make([]CategoryGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, *byCategory[name])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.Abs().GreaterThan(groups[j].Total.Abs())
	})
	return groups
}

// CategoryAmount is a category with its total and its share of the list.
type CategoryAmount struct {
	Name    string
	Amount  decimal.Decimal
	Percent float64
}

// TopCategories returns the n largest categories by amount, descending,
// with each share computed against the top-n total. Non-positive amounts
// are dropped.
func TopCategories(byCategory map[string]decimal.Decimal, n int) []CategoryAmount {
	entries := make([]CategoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		if !amount.IsPositive() {
			continue
		}
		entries = append(entries, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})
	if len(entries) > n {
		entries = entries[:n]
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	if total.IsPositive() {
		for i := range entries {
			share, _ := entries[i].Amount.Div(total).Float64()
			entries[i].Percent = share * 100
		}
	}
	return entries
}
