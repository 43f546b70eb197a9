package report

import "github.com/shopspring/decimal"

// GoalProgress returns the goal completion percentage clamped to [0, 100].
// Current above target or a non-positive target never escapes the clamp;
// the bar must stay renderable whatever the backend sends.
func GoalProgress(current, target decimal.Decimal) int {
	if !target.IsPositive() {
		return 0
	}
	ratio, _ := current.Div(target).Float64()
	percent := int(ratio * 100)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
