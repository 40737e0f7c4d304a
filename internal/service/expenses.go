package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/easyliving-service/internal/forecast"
	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/Dan9191/easyliving-service/internal/repository"
)

// AddExpenseLog records an expense log for the user
func (s *Service) AddExpenseLog(ctx context.Context, userID string, log *models.ExpenseLog) error {
	id, ok := repository.ParseUserID(userID)
	if !ok {
		return repository.ErrUserNotFound
	}
	for _, c := range models.Categories {
		if log.Amount(c) < 0 {
			return fmt.Errorf("%w: %s expense must not be negative", ErrInvalidArgument, c)
		}
	}
	log.UserID = id
	if err := s.repo.CreateExpenseLog(ctx, log); err != nil {
		return err
	}

	s.log.Infof("Expense log %d created for user %d: %.2f", log.ID, id, log.Total)
	return nil
}

const (
	DefaultLogLimit = 500
	MaxLogLimit     = 1000
)

// ListExpenseLogs returns the user's expense logs, newest first. A
// non-positive limit means DefaultLogLimit.
func (s *Service) ListExpenseLogs(ctx context.Context, userID string, limit int) ([]models.ExpenseLog, error) {
	id, ok := repository.ParseUserID(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	switch {
	case limit <= 0:
		limit = DefaultLogLimit
	case limit > MaxLogLimit:
		limit = MaxLogLimit
	}
	logs, err := s.repo.ListExpenseLogs(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.ExpenseLog{}
	}
	return logs, nil
}

// DeleteExpenseLog removes one of the user's expense logs
func (s *Service) DeleteExpenseLog(ctx context.Context, userID string, logID int64) error {
	id, ok := repository.ParseUserID(userID)
	if !ok {
		return repository.ErrUserNotFound
	}
	if logID <= 0 {
		return repository.ErrLogNotFound
	}
	if err := s.repo.DeleteExpenseLog(ctx, id, logID); err != nil {
		return err
	}

	s.log.Infof("Expense log %d deleted for user %d", logID, id)
	return nil
}

// WeeklyStats summarizes the user's expense logs of the last week
func (s *Service) WeeklyStats(ctx context.Context, userID string) (*forecast.WeeklyStats, error) {
	if _, ok := repository.ParseUserID(userID); !ok {
		return nil, repository.ErrUserNotFound
	}
	logs, err := s.repo.FindRecentLogs(ctx, userID, forecast.LogWindowDays)
	if err != nil {
		return nil, err
	}
	stats := forecast.SummarizeWeek(logs)
	return &stats, nil
}

// RecentExpenses returns the daily totals of the user's last logged days,
// oldest first, ready to be sent back as recent_expenses
func (s *Service) RecentExpenses(ctx context.Context, userID string) (*models.RecentExpenses, error) {
	id, ok := repository.ParseUserID(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	days, err := s.repo.DailyTotals(ctx, id, forecast.HistoryLen)
	if err != nil {
		return nil, err
	}

	out := &models.RecentExpenses{
		Days:           days,
		RecentExpenses: make([]float64, 0, len(days)),
	}
	for _, d := range days {
		out.RecentExpenses = append(out.RecentExpenses, d.Total)
	}
	return out, nil
}

// ForecastExpenses runs a personalized expense forecast
func (s *Service) ForecastExpenses(ctx context.Context, req forecast.Request) (*forecast.Result, error) {
	res, err := s.engine.ForecastExpenses(ctx, req)
	if err != nil {
		s.log.WithError(err).WithField("user_id", req.UserID).Error("Expense forecast failed")
		return nil, err
	}

	s.log.Infof("Expense forecast for user %q: %d days, cumulative %.2f", req.UserID, len(res.Predictions), res.PredictedCumulative)
	return res, nil
}
