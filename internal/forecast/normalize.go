package forecast

import "math"

// HistorySource records which input a normalized history was built from.
type HistorySource string

const (
	SourceRecentExpenses  HistorySource = "recent_expenses"
	SourceAverage         HistorySource = "avg7_total"
	SourceProfileFallback HistorySource = "profile_fallback"
)

// NormalizedHistory is a complete 7-day history plus the rolling average that
// goes with it.
type NormalizedHistory struct {
	History        [HistoryLen]float64
	Avg7           float64
	Source         HistorySource
	Avg7Recomputed bool
}

// Sum returns the total of the history.
func (n NormalizedHistory) Sum() float64 {
	var sum float64
	for _, v := range n.History {
		sum += v
	}
	return sum
}

// NormalizeHistory builds a 7-slot history from whichever input is available:
// the recent daily expenses, else the supplied rolling average, else the
// user's monthly spending spread per day. Short lists are left-padded with
// their earliest value; long lists keep the trailing seven days.
func NormalizeHistory(recent []float64, avg7 *float64, monthlySpending *float64) (NormalizedHistory, error) {
	var out NormalizedHistory

	switch {
	case len(recent) > 0:
		if len(recent) > HistoryLen {
			recent = recent[len(recent)-HistoryLen:]
		}
		pad := HistoryLen - len(recent)
		earliest := nonNegative(recent[0])
		for i := 0; i < pad; i++ {
			out.History[i] = earliest
		}
		for i, v := range recent {
			out.History[pad+i] = nonNegative(v)
		}
		out.Source = SourceRecentExpenses
	case validAverage(avg7):
		fill(&out.History, *avg7)
		out.Source = SourceAverage
	case monthlySpending != nil:
		fill(&out.History, nonNegative(*monthlySpending/30))
		out.Source = SourceProfileFallback
	default:
		return NormalizedHistory{}, newError(CodeInvalidInput,
			"provide recent_expenses, avg7_total or a monthly spending figure", nil)
	}

	if validAverage(avg7) {
		out.Avg7 = *avg7
	} else {
		out.Avg7 = NewWindow(out.History).Mean()
		out.Avg7Recomputed = true
	}
	return out, nil
}

func validAverage(avg *float64) bool {
	return avg != nil && !math.IsNaN(*avg) && !math.IsInf(*avg, 0) && *avg > 0
}

// nonNegative maps NaN, infinities and negatives to zero.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func fill(h *[HistoryLen]float64, v float64) {
	for i := range h {
		h[i] = v
	}
}
