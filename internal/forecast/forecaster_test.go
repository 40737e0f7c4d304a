package forecast

import (
	"context"
	"errors"
	"testing"

	"github.com/Dan9191/easyliving-service/internal/integrations/pmml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// linearPredictor mimics the trained regression: intercept + slope*avg.
type linearPredictor struct {
	intercept, slope float64
}

func (p linearPredictor) Predict(_ context.Context, avg float64) (float64, error) {
	return p.intercept + p.slope*avg, nil
}

func TestForecastFeedsPredictionsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	predictor := NewMockPredictor(ctrl)

	var seen []float64
	predictor.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, avg float64) (float64, error) {
			seen = append(seen, avg)
			return avg + 70, nil
		}).
		Times(3)

	f := NewForecaster(predictor, 0)
	got, err := f.Forecast(context.Background(), [HistoryLen]float64{100, 100, 100, 100, 100, 100, 100}, 0.5, 3)
	require.NoError(t, err)

	// factor 0.5 leaves predictions unadjusted
	require.Len(t, seen, 3)
	assert.InDelta(t, 100, seen[0], 1e-9)
	assert.InDelta(t, (600+170)/7.0, seen[1], 1e-9)
	second := (600+170)/7.0 + 70
	assert.InDelta(t, (500+170+second)/7.0, seen[2], 1e-9)

	require.Len(t, got, 3)
	assert.Equal(t, 170.0, got[0])
	assert.Equal(t, round2(second), got[1])
}

func TestForecastAppliesPersonalization(t *testing.T) {
	f := NewForecaster(linearPredictor{intercept: 0, slope: 1}, 0)
	history := [HistoryLen]float64{200, 200, 200, 200, 200, 200, 200}

	high, err := f.Forecast(context.Background(), history, 1.0, 1)
	require.NoError(t, err)
	low, err := f.Forecast(context.Background(), history, 0.2, 1)
	require.NoError(t, err)
	mid, err := f.Forecast(context.Background(), history, 0.5, 1)
	require.NoError(t, err)

	assert.Equal(t, 205.0, high[0])
	assert.Equal(t, 197.0, low[0])
	assert.Equal(t, 200.0, mid[0])
}

func TestForecastLengthAndSign(t *testing.T) {
	f := NewForecaster(linearPredictor{intercept: -500, slope: 1}, 0)
	history := [HistoryLen]float64{10, 20, 30, 40, 50, 60, 70}

	for _, days := range []int{1, 3, 7, 30} {
		got, err := f.Forecast(context.Background(), history, 0.4, days)
		require.NoError(t, err)
		assert.Len(t, got, days)
		for _, v := range got {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}

	got, err := f.Forecast(context.Background(), history, 0.4, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultForecastDays)
}

func TestForecastRejectsHugeHorizon(t *testing.T) {
	f := NewForecaster(linearPredictor{slope: 1}, 0)
	_, err := f.Forecast(context.Background(), [HistoryLen]float64{}, 0.5, MaxForecastDays+1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestForecastModelUnavailable(t *testing.T) {
	t.Run("nil predictor", func(t *testing.T) {
		got, err := NewForecaster(nil, 0).Forecast(context.Background(), [HistoryLen]float64{}, 0.5, 3)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrModelUnavailable)
	})

	t.Run("failure midway returns no partial sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		predictor := NewMockPredictor(ctrl)
		boom := errors.New("connection refused")
		gomock.InOrder(
			predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(120.0, nil),
			predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.0, boom),
		)

		got, err := NewForecaster(predictor, 0).Forecast(context.Background(), [HistoryLen]float64{}, 0.5, 5)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrModelUnavailable)
		assert.ErrorIs(t, err, boom)
	})
}

func TestForecastNilModelIsUnavailable(t *testing.T) {
	var model *pmml.Model
	f := NewForecaster(model, 0)

	out, err := f.Forecast(context.Background(), [HistoryLen]float64{100, 100, 100, 100, 100, 100, 100}, 0.5, 3)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.ErrorIs(t, err, pmml.ErrNotLoaded)
}
