package forecast

import (
	"github.com/Dan9191/easyliving-service/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// highWeeklySpend is the weekly total above which spending is flagged.
const highWeeklySpend = 1000

// WeeklyStats summarizes the expense logs of the last LogWindowDays days.
type WeeklyStats struct {
	TotalExpense    float64         `json:"total_expense_7days"`
	DailyAverage    float64         `json:"daily_average"`
	LogCount        int             `json:"log_count"`
	DaysLogged      int             `json:"days_logged"`
	TopCategory     models.Category `json:"top_category,omitempty"`
	Behavior        BehaviorSignals `json:"behavior"`
	Recommendations []string        `json:"recommendations"`
}

// SummarizeWeek totals a week of expense logs and derives three advice lines:
// weekly level, largest category, logging habit.
func SummarizeWeek(entries []models.ExpenseLog) WeeklyStats {
	behavior := AnalyzeBehavior(entries)

	var total float64
	days := make(map[string]struct{})
	for _, e := range entries {
		total += e.DayTotal()
		days[e.LoggedAt.UTC().Format("2006-01-02")] = struct{}{}
	}

	var top models.Category
	for _, c := range models.Categories {
		if behavior.CategoryTotals[c] > 0 && (top == "" || behavior.CategoryTotals[c] > behavior.CategoryTotals[top]) {
			top = c
		}
	}

	stats := WeeklyStats{
		TotalExpense: round2(total),
		DailyAverage: round2(total / LogWindowDays),
		LogCount:     len(entries),
		DaysLogged:   len(days),
		TopCategory:  top,
		Behavior:     behavior,
	}

	printer := message.NewPrinter(language.English)
	switch {
	case len(entries) == 0:
		stats.Recommendations = append(stats.Recommendations, "No expenses logged this week. Log daily to get personalized suggestions.")
	case total > highWeeklySpend:
		stats.Recommendations = append(stats.Recommendations, printer.Sprintf(
			"Weekly expenses appear high at %s. Review food and transport spending.", FormatRupees(stats.TotalExpense)))
	default:
		stats.Recommendations = append(stats.Recommendations, printer.Sprintf(
			"Expenses are within a normal range this week at %s.", FormatRupees(stats.TotalExpense)))
	}
	if top != "" {
		stats.Recommendations = append(stats.Recommendations, printer.Sprintf(
			"Your largest category this week is %s at %s.", top, FormatRupees(round2(behavior.CategoryTotals[top]))))
	} else {
		stats.Recommendations = append(stats.Recommendations, "No category spending recorded this week.")
	}
	stats.Recommendations = append(stats.Recommendations, loggingAdvice(behavior.LoggingGapFrequency))
	return stats
}
