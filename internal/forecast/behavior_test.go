package forecast

import (
	"testing"
	"time"

	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/stretchr/testify/assert"
)

var day0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func logOn(day int, food, transport, personal, medical float64) models.ExpenseLog {
	return models.ExpenseLog{
		LoggedAt:  day0.AddDate(0, 0, day),
		Food:      food,
		Transport: transport,
		Personal:  personal,
		Medical:   medical,
	}
}

func TestAnalyzeBehaviorEmptyWindow(t *testing.T) {
	s := AnalyzeBehavior(nil)
	assert.Equal(t, OverspendRarely, s.OverspendFrequency)
	assert.Equal(t, GapNever, s.LoggingGapFrequency)
	assert.Empty(t, s.OverspentCategories)
	assert.Len(t, s.CategoryTotals, len(models.Categories))
	for _, c := range models.Categories {
		assert.Zero(t, s.CategoryTotals[c])
	}
}

func TestAnalyzeBehaviorUniformDays(t *testing.T) {
	var logs []models.ExpenseLog
	for d := 0; d < 7; d++ {
		logs = append(logs, logOn(d, 100, 100, 100, 100))
	}
	s := AnalyzeBehavior(logs)
	assert.Equal(t, OverspendRarely, s.OverspendFrequency)
	assert.Equal(t, GapNever, s.LoggingGapFrequency)
	assert.Empty(t, s.OverspentCategories)
	assert.Equal(t, 700.0, s.CategoryTotals[models.CategoryFood])
}

func TestAnalyzeBehaviorOverspendDays(t *testing.T) {
	// one spike in five days: mean 180, spike 500 > 216
	logs := []models.ExpenseLog{
		logOn(0, 100, 0, 0, 0),
		logOn(1, 100, 0, 0, 0),
		logOn(2, 100, 0, 0, 0),
		logOn(3, 100, 0, 0, 0),
		logOn(4, 500, 0, 0, 0),
	}
	s := AnalyzeBehavior(logs)
	assert.Equal(t, OverspendSometimes, s.OverspendFrequency)
}

func TestAnalyzeBehaviorSameDayEntriesAreSummed(t *testing.T) {
	morning := logOn(0, 50, 0, 0, 0)
	evening := logOn(0, 50, 0, 0, 0)
	evening.LoggedAt = evening.LoggedAt.Add(10 * time.Hour)
	logs := []models.ExpenseLog{morning, evening, logOn(1, 100, 0, 0, 0)}

	s := AnalyzeBehavior(logs)
	assert.Equal(t, OverspendRarely, s.OverspendFrequency)
}

func TestAnalyzeBehaviorUsesStoredTotal(t *testing.T) {
	a := logOn(0, 0, 0, 0, 0)
	a.Total = 1000
	logs := []models.ExpenseLog{a, logOn(1, 10, 0, 0, 0), logOn(2, 10, 0, 0, 0)}

	s := AnalyzeBehavior(logs)
	assert.Equal(t, OverspendOften, s.OverspendFrequency)
}

func TestAnalyzeBehaviorLoggingGaps(t *testing.T) {
	t.Run("two entries ten days apart", func(t *testing.T) {
		s := AnalyzeBehavior([]models.ExpenseLog{logOn(10, 1, 0, 0, 0), logOn(0, 1, 0, 0, 0)})
		assert.Equal(t, GapOften, s.LoggingGapFrequency)
	})

	t.Run("three day gaps", func(t *testing.T) {
		s := AnalyzeBehavior([]models.ExpenseLog{logOn(0, 1, 0, 0, 0), logOn(3, 1, 0, 0, 0), logOn(6, 1, 0, 0, 0)})
		assert.Equal(t, GapSometimes, s.LoggingGapFrequency)
	})

	t.Run("single entry has no gap evidence", func(t *testing.T) {
		s := AnalyzeBehavior([]models.ExpenseLog{logOn(0, 1, 0, 0, 0)})
		assert.Equal(t, GapNever, s.LoggingGapFrequency)
	})

	t.Run("untimestamped entries are ignored", func(t *testing.T) {
		s := AnalyzeBehavior([]models.ExpenseLog{logOn(0, 1, 0, 0, 0), {Food: 5}})
		assert.Equal(t, GapNever, s.LoggingGapFrequency)
	})
}

func TestAnalyzeBehaviorOverspentCategories(t *testing.T) {
	logs := []models.ExpenseLog{
		logOn(0, 700, 100, 100, 100),
		logOn(1, 700, 100, 100, 100),
	}
	s := AnalyzeBehavior(logs)
	assert.Equal(t, []models.Category{models.CategoryFood}, s.OverspentCategories)
	assert.Equal(t, 1400.0, s.CategoryTotals[models.CategoryFood])
	assert.Equal(t, 200.0, s.CategoryTotals[models.CategoryMedical])
}

func TestClassifyOverspendThresholds(t *testing.T) {
	tests := []struct {
		share float64
		want  OverspendFrequency
	}{
		{0, OverspendRarely},
		{0.1, OverspendRarely},
		{0.1001, OverspendSometimes},
		{0.3, OverspendSometimes},
		{0.3001, OverspendOften},
		{0.6, OverspendOften},
		{0.6001, OverspendAlways},
		{1, OverspendAlways},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyOverspend(tt.share), "share %v", tt.share)
	}
}

func TestClassifyLoggingGapThresholds(t *testing.T) {
	tests := []struct {
		gap  float64
		want LoggingGapFrequency
	}{
		{0, GapNever},
		{2, GapNever},
		{2.01, GapSometimes},
		{5, GapSometimes},
		{5.01, GapOften},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyLoggingGap(tt.gap), "gap %v", tt.gap)
	}
}

func TestFrequencyText(t *testing.T) {
	assert.Equal(t, "always", OverspendAlways.String())
	assert.Equal(t, "sometimes", GapSometimes.String())
	b, err := OverspendOften.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "often", string(b))
}

func TestFrequencyUnmarshalText(t *testing.T) {
	var o OverspendFrequency
	assert.NoError(t, o.UnmarshalText([]byte("always")))
	assert.Equal(t, OverspendAlways, o)
	assert.Error(t, o.UnmarshalText([]byte("never")))

	var g LoggingGapFrequency
	assert.NoError(t, g.UnmarshalText([]byte("often")))
	assert.Equal(t, GapOften, g)
	assert.Error(t, g.UnmarshalText([]byte("always")))
}
