// Package web holds the embedded screen templates and their helper
// functions.
package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts are grouped in thousands, e.g. "12 345".
const groupSeparator = " "

// FormatMoney renders a decimal amount rounded to whole units with
// thousands grouping, e.g. "12 345" or "-1 000".
func FormatMoney(d decimal.Decimal) string {
	rounded := d.Round(0)
	grouped := groupDigits(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + grouped
	}
	return grouped
}

// FormatSigned renders an amount with an explicit sign, e.g. "+12 345".
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return FormatMoney(d)
	}
	return "+" + FormatMoney(d)
}

func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Funcs is the function map shared by all screen templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":  FormatMoney,
		"signed": FormatSigned,
		"moneyf": func(f float64) string { return FormatMoney(decimal.NewFromFloat(f)) },
		"pct":    func(f float64) string { return fmt.Sprintf("%.1f", f) },
		"inc":    func(n int) int { return n + 1 },
		"dec":    func(n int) int { return n - 1 },
	}
}
