package forecast

import (
	"testing"

	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeWeekEmpty(t *testing.T) {
	stats := SummarizeWeek(nil)

	assert.Zero(t, stats.TotalExpense)
	assert.Zero(t, stats.DaysLogged)
	assert.Empty(t, stats.TopCategory)
	require.Len(t, stats.Recommendations, 3)
	assert.Contains(t, stats.Recommendations[0], "No expenses logged")
	assert.Contains(t, stats.Recommendations[1], "No category spending")
}

func TestSummarizeWeek(t *testing.T) {
	entries := []models.ExpenseLog{
		logOn(0, 300, 100, 0, 0),
		logOn(0, 200, 0, 0, 0),
		logOn(1, 250, 50, 40, 0),
		logOn(2, 120, 60, 0, 80),
	}

	stats := SummarizeWeek(entries)
	assert.Equal(t, 1200.0, stats.TotalExpense)
	assert.InDelta(t, 171.43, stats.DailyAverage, 0.001)
	assert.Equal(t, 4, stats.LogCount)
	assert.Equal(t, 3, stats.DaysLogged)
	assert.Equal(t, models.CategoryFood, stats.TopCategory)
	assert.Equal(t, []models.Category{models.CategoryFood}, stats.Behavior.OverspentCategories)

	require.Len(t, stats.Recommendations, 3)
	assert.Contains(t, stats.Recommendations[0], "appear high")
	assert.Contains(t, stats.Recommendations[0], "₹1,200.00")
	assert.Contains(t, stats.Recommendations[1], "food at ₹870.00")
	assert.Contains(t, stats.Recommendations[2], "Great logging consistency")
}

func TestSummarizeWeekNormalRange(t *testing.T) {
	stats := SummarizeWeek([]models.ExpenseLog{logOn(0, 0, 90, 0, 0)})

	assert.Equal(t, models.CategoryTransport, stats.TopCategory)
	assert.Contains(t, stats.Recommendations[0], "within a normal range")
}
