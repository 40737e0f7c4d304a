package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/Dan9191/easyliving-service/internal/models"
)

// LogWindowDays is the span of expense logs analyzed per request.
const LogWindowDays = 7

// overspendMultiplier marks a day or category as overspent when it exceeds
// the relevant mean by this factor.
const overspendMultiplier = 1.2

// OverspendFrequency buckets how often daily spending runs above normal.
type OverspendFrequency int

const (
	OverspendRarely OverspendFrequency = iota
	OverspendSometimes
	OverspendOften
	OverspendAlways
)

var overspendNames = [...]string{"rarely", "sometimes", "often", "always"}

func (f OverspendFrequency) String() string {
	if f < 0 || int(f) >= len(overspendNames) {
		return fmt.Sprintf("OverspendFrequency(%d)", int(f))
	}
	return overspendNames[f]
}

func (f OverspendFrequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *OverspendFrequency) UnmarshalText(text []byte) error {
	for i, name := range overspendNames {
		if name == string(text) {
			*f = OverspendFrequency(i)
			return nil
		}
	}
	return fmt.Errorf("unknown overspend frequency %q", text)
}

// ClassifyOverspend buckets the share of overspent days.
func ClassifyOverspend(share float64) OverspendFrequency {
	switch {
	case share > 0.6:
		return OverspendAlways
	case share > 0.3:
		return OverspendOften
	case share > 0.1:
		return OverspendSometimes
	default:
		return OverspendRarely
	}
}

// LoggingGapFrequency buckets how long users go between expense logs.
type LoggingGapFrequency int

const (
	GapNever LoggingGapFrequency = iota
	GapSometimes
	GapOften
)

var gapNames = [...]string{"never", "sometimes", "often"}

func (f LoggingGapFrequency) String() string {
	if f < 0 || int(f) >= len(gapNames) {
		return fmt.Sprintf("LoggingGapFrequency(%d)", int(f))
	}
	return gapNames[f]
}

func (f LoggingGapFrequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *LoggingGapFrequency) UnmarshalText(text []byte) error {
	for i, name := range gapNames {
		if name == string(text) {
			*f = LoggingGapFrequency(i)
			return nil
		}
	}
	return fmt.Errorf("unknown logging gap frequency %q", text)
}

// ClassifyLoggingGap buckets the mean gap, in days, between logs.
func ClassifyLoggingGap(meanGapDays float64) LoggingGapFrequency {
	switch {
	case meanGapDays > 5:
		return GapOften
	case meanGapDays > 2:
		return GapSometimes
	default:
		return GapNever
	}
}

// BehaviorSignals summarizes a user's spending behavior over the log window.
type BehaviorSignals struct {
	OverspendFrequency  OverspendFrequency           `json:"overspend_frequency"`
	LoggingGapFrequency LoggingGapFrequency          `json:"logging_gap_frequency"`
	OverspentCategories []models.Category            `json:"overspent_categories"`
	CategoryTotals      map[models.Category]float64 `json:"category_totals"`
}

// AnalyzeBehavior derives behavior signals from a window of expense logs.
// An empty window yields zero totals and the calmest buckets.
func AnalyzeBehavior(entries []models.ExpenseLog) BehaviorSignals {
	totals := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.Categories {
		totals[c] = 0
	}
	for _, e := range entries {
		for _, c := range models.Categories {
			totals[c] += e.Amount(c)
		}
	}

	return BehaviorSignals{
		OverspendFrequency:  ClassifyOverspend(overspentDayShare(entries)),
		LoggingGapFrequency: ClassifyLoggingGap(meanGapDays(entries)),
		OverspentCategories: overspentCategories(totals),
		CategoryTotals:      totals,
	}
}

func overspentDayShare(entries []models.ExpenseLog) float64 {
	if len(entries) == 0 {
		return 0
	}
	daily := make(map[string]float64)
	for _, e := range entries {
		daily[e.LoggedAt.UTC().Format("2006-01-02")] += e.DayTotal()
	}

	var sum float64
	for _, v := range daily {
		sum += v
	}
	mean := sum / float64(len(daily))

	over := 0
	for _, v := range daily {
		if v > mean*overspendMultiplier {
			over++
		}
	}
	return float64(over) / float64(len(daily))
}

func meanGapDays(entries []models.ExpenseLog) float64 {
	stamps := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		if !e.LoggedAt.IsZero() {
			stamps = append(stamps, e.LoggedAt)
		}
	}
	if len(stamps) < 2 {
		return 0
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	var total time.Duration
	for i := 1; i < len(stamps); i++ {
		total += stamps[i].Sub(stamps[i-1])
	}
	return total.Hours() / 24 / float64(len(stamps)-1)
}

func overspentCategories(totals map[models.Category]float64) []models.Category {
	var meanAvg float64
	for _, c := range models.Categories {
		meanAvg += totals[c] / LogWindowDays
	}
	meanAvg /= float64(len(models.Categories))

	out := []models.Category{}
	for _, c := range models.Categories {
		if totals[c]/LogWindowDays > meanAvg*overspendMultiplier {
			out = append(out, c)
		}
	}
	return out
}
