package forecast

import (
	"context"
	"time"
)

const (
	DefaultForecastDays = 7
	MaxForecastDays     = 365

	// personalizationBand scales (factor - 0.5) into a +/-2.5% adjustment.
	personalizationBand = 0.05
)

// Forecaster produces multi-day forecasts by feeding each prediction back
// into the rolling window that feeds the next one.
type Forecaster struct {
	predictor Predictor
	timeout   time.Duration
}

// NewForecaster creates a forecaster. A zero timeout leaves calls bounded only
// by the caller's context.
func NewForecaster(p Predictor, timeout time.Duration) *Forecaster {
	return &Forecaster{predictor: p, timeout: timeout}
}

// Adjust applies the personalization bias to a raw prediction.
func Adjust(raw, factor float64) float64 {
	return raw * (1 + (factor-0.5)*personalizationBand)
}

// Forecast returns days successive daily forecasts rounded to 2 decimals.
// days <= 0 means DefaultForecastDays.
func (f *Forecaster) Forecast(ctx context.Context, history [HistoryLen]float64, factor float64, days int) ([]float64, error) {
	if days <= 0 {
		days = DefaultForecastDays
	}
	if days > MaxForecastDays {
		return nil, newError(CodeInvalidInput, "days must not exceed 365", nil)
	}
	if f.predictor == nil {
		return nil, newError(CodeModelUnavailable, "expense model not loaded", nil)
	}

	window := NewWindow(history)
	out := make([]float64, 0, days)
	for step := 0; step < days; step++ {
		raw, err := f.predict(ctx, window.Mean())
		if err != nil {
			return nil, newError(CodeModelUnavailable, "expense prediction failed", err)
		}
		adjusted := nonNegative(Adjust(raw, factor))
		window.Push(adjusted)
		out = append(out, round2(adjusted))
	}
	return out, nil
}

func (f *Forecaster) predict(ctx context.Context, avg float64) (float64, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	return f.predictor.Predict(ctx, avg)
}
