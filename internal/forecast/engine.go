// Package forecast implements the expense forecasting and spending-behavior
// engine: history normalization, personalization, the iterative forecaster,
// behavior analysis and recommendation synthesis.
package forecast

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMonthlyIncome      = 25000
	DefaultAvgMonthlySpending = 18000
)

// ProfileSource records where the financial profile of a forecast came from.
type ProfileSource string

const (
	ProfileStored   ProfileSource = "stored"
	ProfileRequest  ProfileSource = "request"
	ProfileDefaults ProfileSource = "defaults"
)

// Request is a forecast request. Nil pointers mean the field was not supplied.
type Request struct {
	UserID             string    `json:"user_id,omitempty"`
	RecentExpenses     []float64 `json:"recent_expenses,omitempty"`
	Avg7Total          *float64  `json:"avg7_total,omitempty"`
	Days               int       `json:"days,omitempty"`
	MonthlyIncome      *float64  `json:"monthly_income,omitempty"`
	AvgMonthlySpending *float64  `json:"avg_monthly_spending,omitempty"`
}

// Result is a complete forecast.
type Result struct {
	Predictions           []float64       `json:"predictions"`
	PredictedCumulative   float64         `json:"predicted_cumulative"`
	Last7Cumulative       float64         `json:"last7_cumulative"`
	PersonalizationFactor float64         `json:"personalization_factor"`
	Recommendations       []string        `json:"recommendations"`
	Avg7Total             float64         `json:"avg7_total"`
	HistorySource         HistorySource   `json:"history_source"`
	ProfileSource         ProfileSource   `json:"profile_source"`
	Behavior              BehaviorSignals `json:"behavior"`
}

// Deps are the external collaborators of the engine. Profiles and Logs may
// be nil, in which case every user is treated as unknown.
type Deps struct {
	Predictor Predictor
	Profiles  ProfileStore
	Logs      LogStore
	Logger    *logrus.Logger
}

// Options tune timeouts and fallback values. Non-positive defaults are
// replaced by DefaultMonthlyIncome and DefaultAvgMonthlySpending.
type Options struct {
	PredictTimeout  time.Duration
	StoreTimeout    time.Duration
	DefaultIncome   float64
	DefaultSpending float64
}

// Engine runs forecasts. It holds no per-request state and is safe for
// concurrent use.
type Engine struct {
	forecaster *Forecaster
	profiles   ProfileStore
	logs       LogStore
	log        *logrus.Logger
	opts       Options
}

// NewEngine wires an engine from its dependencies.
func NewEngine(deps Deps, opts Options) *Engine {
	if opts.DefaultIncome <= 0 {
		opts.DefaultIncome = DefaultMonthlyIncome
	}
	if opts.DefaultSpending <= 0 {
		opts.DefaultSpending = DefaultAvgMonthlySpending
	}
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Engine{
		forecaster: NewForecaster(deps.Predictor, opts.PredictTimeout),
		profiles:   deps.Profiles,
		logs:       deps.Logs,
		log:        logger,
		opts:       opts,
	}
}

// ForecastExpenses runs the full pipeline for one request. On failure it
// returns a nil result and an *Error.
func (e *Engine) ForecastExpenses(ctx context.Context, req Request) (*Result, error) {
	var (
		profile       models.FinancialProfile
		profileSource ProfileSource
		history       NormalizedHistory
		behavior      BehaviorSignals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, profileSource, err = e.resolveProfile(gctx, req)
		if err != nil {
			return err
		}
		spending := profile.AvgMonthlySpending
		history, err = NormalizeHistory(req.RecentExpenses, req.Avg7Total, &spending)
		return err
	})
	g.Go(func() error {
		entries, err := e.recentLogs(gctx, req.UserID)
		if err != nil {
			return err
		}
		behavior = AnalyzeBehavior(entries)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, asError(err)
	}

	factor := PersonalizationFactor(profile.MonthlyIncome, profile.AvgMonthlySpending)
	predictions, err := e.forecaster.Forecast(ctx, history.History, factor, req.Days)
	if err != nil {
		return nil, asError(err)
	}

	var sum float64
	for _, p := range predictions {
		sum += p
	}
	cumulative := round2(math.Min(sum, CumulativeCap(profile.MonthlyIncome, profile.AvgMonthlySpending)))
	last7 := round2(last7Cumulative(history, predictions))

	result := &Result{
		Predictions:           predictions,
		PredictedCumulative:   cumulative,
		Last7Cumulative:       last7,
		PersonalizationFactor: factor,
		Avg7Total:             round2(history.Avg7),
		HistorySource:         history.Source,
		ProfileSource:         profileSource,
		Behavior:              behavior,
		Recommendations: Recommend(RecommendationInput{
			PredictedCumulative: cumulative,
			Last7Cumulative:     last7,
			Profile:             profile,
			Behavior:            behavior,
		}),
	}

	e.log.WithFields(logrus.Fields{
		"user_id":        req.UserID,
		"days":           len(predictions),
		"history_source": history.Source,
		"profile_source": profileSource,
		"factor":         factor,
		"cumulative":     cumulative,
	}).Debug("Expense forecast computed")
	return result, nil
}

// resolveProfile prefers the stored profile, then request values, then
// defaults. Unknown users are not an error.
func (e *Engine) resolveProfile(ctx context.Context, req Request) (models.FinancialProfile, ProfileSource, error) {
	if req.UserID != "" && e.profiles != nil {
		ctx, cancel := e.storeContext(ctx)
		defer cancel()
		p, err := e.profiles.FindProfile(ctx, req.UserID)
		if err != nil {
			return models.FinancialProfile{}, "", newError(CodeProfileLookupFailed, "failed to load financial profile", err)
		}
		if p != nil {
			return *p, ProfileStored, nil
		}
	}

	profile := models.FinancialProfile{
		MonthlyIncome:      e.opts.DefaultIncome,
		AvgMonthlySpending: e.opts.DefaultSpending,
	}
	source := ProfileDefaults
	if req.MonthlyIncome != nil && validFigure(*req.MonthlyIncome) {
		profile.MonthlyIncome = *req.MonthlyIncome
		source = ProfileRequest
	}
	if req.AvgMonthlySpending != nil && validFigure(*req.AvgMonthlySpending) {
		profile.AvgMonthlySpending = *req.AvgMonthlySpending
		source = ProfileRequest
	}
	return profile, source, nil
}

// Request figures that are negative or not finite are treated as missing. A
// zero income is kept; PersonalizationFactor floors it.
func validFigure(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func (e *Engine) recentLogs(ctx context.Context, userID string) ([]models.ExpenseLog, error) {
	if userID == "" || e.logs == nil {
		return nil, nil
	}
	ctx, cancel := e.storeContext(ctx)
	defer cancel()
	entries, err := e.logs.FindRecentLogs(ctx, userID, LogWindowDays)
	if err != nil {
		return nil, newError(CodeLogLookupFailed, "failed to load expense logs", err)
	}
	return entries, nil
}

func (e *Engine) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.opts.StoreTimeout > 0 {
		return context.WithTimeout(ctx, e.opts.StoreTimeout)
	}
	return context.WithCancel(ctx)
}

// last7Cumulative is the reference total the forecast is compared with. With
// no real history it falls back to the forecast's own weekly rate.
func last7Cumulative(h NormalizedHistory, predictions []float64) float64 {
	switch h.Source {
	case SourceRecentExpenses:
		return h.Sum()
	case SourceAverage:
		return h.Avg7 * HistoryLen
	}
	if len(predictions) == 0 {
		return 0
	}
	var sum float64
	for _, p := range predictions {
		sum += p
	}
	return sum / float64(len(predictions)) * HistoryLen
}

func asError(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return newError(CodeModelUnavailable, "forecast failed", err)
}
