package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizeHistory(t *testing.T) {
	t.Run("single entry is repeated across the window", func(t *testing.T) {
		h, err := NormalizeHistory([]float64{100}, nil, ptr(18000))
		require.NoError(t, err)
		assert.Equal(t, [HistoryLen]float64{100, 100, 100, 100, 100, 100, 100}, h.History)
		assert.Equal(t, SourceRecentExpenses, h.Source)
		assert.Equal(t, 100.0, h.Avg7)
		assert.True(t, h.Avg7Recomputed)
	})

	t.Run("short list is left padded with its earliest value", func(t *testing.T) {
		h, err := NormalizeHistory([]float64{50, 80, 90}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, [HistoryLen]float64{50, 50, 50, 50, 50, 80, 90}, h.History)
	})

	t.Run("long list keeps the trailing seven days", func(t *testing.T) {
		h, err := NormalizeHistory([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, [HistoryLen]float64{3, 4, 5, 6, 7, 8, 9}, h.History)
	})

	t.Run("invalid entries are zeroed", func(t *testing.T) {
		h, err := NormalizeHistory([]float64{-5, math.NaN(), math.Inf(1), 10, 10, 10, 10}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, [HistoryLen]float64{0, 0, 0, 10, 10, 10, 10}, h.History)
	})

	t.Run("average is replicated when no list is given", func(t *testing.T) {
		h, err := NormalizeHistory(nil, ptr(420), ptr(18000))
		require.NoError(t, err)
		assert.Equal(t, [HistoryLen]float64{420, 420, 420, 420, 420, 420, 420}, h.History)
		assert.Equal(t, SourceAverage, h.Source)
		assert.Equal(t, 420.0, h.Avg7)
		assert.False(t, h.Avg7Recomputed)
	})

	t.Run("supplied average is kept alongside a list", func(t *testing.T) {
		h, err := NormalizeHistory([]float64{100}, ptr(250), nil)
		require.NoError(t, err)
		assert.Equal(t, SourceRecentExpenses, h.Source)
		assert.Equal(t, 250.0, h.Avg7)
		assert.False(t, h.Avg7Recomputed)
	})

	t.Run("zero and NaN averages fall through to the profile", func(t *testing.T) {
		for _, avg := range []float64{0, math.NaN(), -3} {
			h, err := NormalizeHistory(nil, ptr(avg), ptr(3000))
			require.NoError(t, err)
			assert.Equal(t, SourceProfileFallback, h.Source)
			assert.Equal(t, 100.0, h.History[0])
			assert.Equal(t, 100.0, h.Avg7)
			assert.True(t, h.Avg7Recomputed)
		}
	})

	t.Run("empty list with zero spending yields zeros", func(t *testing.T) {
		h, err := NormalizeHistory([]float64{}, nil, ptr(0))
		require.NoError(t, err)
		assert.Equal(t, [HistoryLen]float64{}, h.History)
		assert.Equal(t, 0.0, h.Avg7)
	})

	t.Run("nothing to derive from is invalid input", func(t *testing.T) {
		_, err := NormalizeHistory(nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("length is always seven", func(t *testing.T) {
		for n := 0; n <= 12; n++ {
			recent := make([]float64, n)
			for i := range recent {
				recent[i] = float64(i + 1)
			}
			h, err := NormalizeHistory(recent, nil, ptr(900))
			require.NoError(t, err)
			assert.Len(t, h.History, HistoryLen)
		}
	})
}

func TestWindow(t *testing.T) {
	w := NewWindow([HistoryLen]float64{1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, 4.0, w.Mean())

	w.Push(14)
	assert.Equal(t, [HistoryLen]float64{2, 3, 4, 5, 6, 7, 14}, w.Values())
	assert.Equal(t, 41.0/7, w.Mean())

	for i := 0; i < HistoryLen; i++ {
		w.Push(0)
	}
	assert.Equal(t, [HistoryLen]float64{}, w.Values())
	assert.Equal(t, 0.0, w.Mean())
}

func TestPersonalizationFactor(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		spending float64
		want     float64
	}{
		{"zero income", 0, 0, 0.2},
		{"zero income with spending", 0, 5000, 0.2},
		{"negative income", -100, 50, 0.2},
		{"low ratio clamps up", 100000, 1000, 0.2},
		{"mid ratio passes through", 25000, 18000, 0.72},
		{"high ratio clamps down", 10000, 30000, 1.0},
		{"exact lower bound", 1000, 200, 0.2},
		{"exact upper bound", 1000, 1000, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PersonalizationFactor(tt.income, tt.spending)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, MinPersonalizationFactor)
			assert.LessOrEqual(t, got, MaxPersonalizationFactor)
		})
	}
}

func TestCumulativeCap(t *testing.T) {
	assert.Equal(t, 6250.0, CumulativeCap(25000, 18000))
	assert.Equal(t, 9000.0, CumulativeCap(1000, 30000))
	assert.Equal(t, 0.0, CumulativeCap(0, 0))
}
