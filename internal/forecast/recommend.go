package forecast

import (
	"math"
	"strings"

	"github.com/Dan9191/easyliving-service/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	trendRiseRatio = 1.1
	trendFallRatio = 0.9

	minSavings  = 500
	savingsRate = 0.05
)

// Trend compares a forecast total with the reference week.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// CompareTrend classifies predicted against the last 7 days' total.
func CompareTrend(predicted, last7 float64) Trend {
	switch {
	case predicted > last7*trendRiseRatio:
		return TrendRising
	case predicted < last7*trendFallRatio:
		return TrendFalling
	default:
		return TrendStable
	}
}

// BudgetHealth buckets the spending-to-income ratio.
type BudgetHealth string

const (
	BudgetCritical BudgetHealth = "critical"
	BudgetCaution  BudgetHealth = "caution"
	BudgetHealthy  BudgetHealth = "healthy"
)

// ClassifyBudget buckets spending against income. Without an income any
// spending at all is critical.
func ClassifyBudget(monthlyIncome, avgMonthlySpending float64) BudgetHealth {
	var ratio float64
	switch {
	case monthlyIncome > 0:
		ratio = avgMonthlySpending / monthlyIncome
	case avgMonthlySpending > 0:
		ratio = math.Inf(1)
	}
	switch {
	case ratio >= 0.9:
		return BudgetCritical
	case ratio >= 0.7:
		return BudgetCaution
	default:
		return BudgetHealthy
	}
}

// SavingsTarget is the suggested amount to set aside each month.
func SavingsTarget(monthlyIncome float64) float64 {
	return math.Max(minSavings, monthlyIncome*savingsRate)
}

// RecommendationInput carries every signal the advice is built from.
type RecommendationInput struct {
	PredictedCumulative float64
	Last7Cumulative     float64
	Profile             models.FinancialProfile
	Behavior            BehaviorSignals
}

// FormatRupees renders an amount with grouping and two decimals.
func FormatRupees(v float64) string {
	return message.NewPrinter(language.English).Sprintf("₹%.2f", v)
}

// Recommend builds one advice line per signal, always in the same order:
// trend, categories, budget, logging, overspending, savings.
func Recommend(in RecommendationInput) []string {
	printer := message.NewPrinter(language.English)
	recs := make([]string, 0, 6)

	switch CompareTrend(in.PredictedCumulative, in.Last7Cumulative) {
	case TrendRising:
		recs = append(recs, printer.Sprintf(
			"⚠️ Spending is predicted to rise to %s over the coming days, above last week's %s. Cut back on non-essentials.",
			FormatRupees(in.PredictedCumulative), FormatRupees(in.Last7Cumulative)))
	case TrendFalling:
		recs = append(recs, printer.Sprintf(
			"✅ Great job! Spending is projected to drop to %s, down from %s. Keep these habits going.",
			FormatRupees(in.PredictedCumulative), FormatRupees(in.Last7Cumulative)))
	default:
		recs = append(recs, printer.Sprintf(
			"📈 Your spending trend looks stable at around %s. Keep monitoring daily expenses.",
			FormatRupees(in.PredictedCumulative)))
	}

	if len(in.Behavior.OverspentCategories) > 0 {
		names := make([]string, len(in.Behavior.OverspentCategories))
		for i, c := range in.Behavior.OverspentCategories {
			names[i] = string(c)
		}
		recs = append(recs, "💰 You're spending more than usual on "+strings.Join(names, ", ")+". Review these categories first.")
	} else {
		recs = append(recs, "👌 Spending is balanced across food, transport, personal and medical.")
	}

	switch ClassifyBudget(in.Profile.MonthlyIncome, in.Profile.AvgMonthlySpending) {
	case BudgetCritical:
		recs = append(recs, "🚨 Your monthly spending is at or above 90% of your income. Build a strict budget now.")
	case BudgetCaution:
		recs = append(recs, "⚠️ Your monthly spending uses over 70% of your income. Watch discretionary purchases.")
	default:
		recs = append(recs, "✅ Your spending is comfortably within your income.")
	}

	recs = append(recs, loggingAdvice(in.Behavior.LoggingGapFrequency))

	switch in.Behavior.OverspendFrequency {
	case OverspendAlways:
		recs = append(recs, "🔥 Most days run well above your average spend. Set a daily spending limit.")
	case OverspendOften:
		recs = append(recs, "⚠️ You often overspend compared to your usual days. Plan purchases ahead.")
	case OverspendSometimes:
		recs = append(recs, "💡 Occasional high-spend days. Check what triggered them.")
	default:
		recs = append(recs, "👏 Your daily spending is steady with rare spikes.")
	}

	recs = append(recs, printer.Sprintf("🏦 Try to set aside at least %s this month.", FormatRupees(SavingsTarget(in.Profile.MonthlyIncome))))
	return recs
}

func loggingAdvice(gap LoggingGapFrequency) string {
	switch gap {
	case GapOften:
		return "📝 You often go several days without logging. Set a daily reminder to record expenses."
	case GapSometimes:
		return "📝 A few logging gaps showed up. Logging every day makes forecasts more accurate."
	default:
		return "📝 Great logging consistency. Keep it up!"
	}
}
