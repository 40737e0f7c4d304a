package service

import (
	"context"

	"github.com/Dan9191/easyliving-service/internal/models"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=service

// Store persists users and expense logs
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateFinancials(ctx context.Context, id int64, profile models.FinancialProfile) error
	CreateExpenseLog(ctx context.Context, log *models.ExpenseLog) error
	ListExpenseLogs(ctx context.Context, userID int64, limit int) ([]models.ExpenseLog, error)
	DeleteExpenseLog(ctx context.Context, userID, logID int64) error
	FindRecentLogs(ctx context.Context, userID string, windowDays int) ([]models.ExpenseLog, error)
	DailyTotals(ctx context.Context, userID int64, days int) ([]models.DailyExpense, error)
}
