package forecast

import (
	"context"

	"github.com/Dan9191/easyliving-service/internal/models"
)

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=forecast

// Predictor is a point regression model: one rolling average in, one next-day total out.
type Predictor interface {
	Predict(ctx context.Context, avgRecent float64) (float64, error)
}

// ProfileStore looks up a user's financial profile. A nil profile with a nil
// error means the user is unknown.
type ProfileStore interface {
	FindProfile(ctx context.Context, userID string) (*models.FinancialProfile, error)
}

// LogStore returns a user's expense logs from the last windowDays days.
type LogStore interface {
	FindRecentLogs(ctx context.Context, userID string, windowDays int) ([]models.ExpenseLog, error)
}
