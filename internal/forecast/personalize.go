package forecast

import "math"

const (
	MinPersonalizationFactor = 0.2
	MaxPersonalizationFactor = 1.0
)

// PersonalizationFactor is the spending-to-income ratio clamped to
// [0.2, 1.0]. A non-positive income yields the lower bound.
func PersonalizationFactor(monthlyIncome, avgMonthlySpending float64) float64 {
	if monthlyIncome <= 0 || math.IsNaN(monthlyIncome) {
		return MinPersonalizationFactor
	}
	ratio := avgMonthlySpending / monthlyIncome
	if math.IsNaN(ratio) {
		return MinPersonalizationFactor
	}
	return math.Min(math.Max(ratio, MinPersonalizationFactor), MaxPersonalizationFactor)
}

// CumulativeCap is the upper bound on a forecast's cumulative total.
func CumulativeCap(monthlyIncome, avgMonthlySpending float64) float64 {
	return math.Max(avgMonthlySpending*0.3, monthlyIncome*0.25)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
