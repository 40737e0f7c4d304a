// Package repository stores users and expense logs in Postgres.
//
// Tables queried:
//
//	easyliving.users (id, name, email, password_hash, monthly_income,
//	    avg_monthly_spending, created_at, updated_at)
//	easyliving.expense_logs (id, user_id, logged_at, food_expense,
//	    transport_expense, personal_expense, medical_expense, total_expense)
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/lib/pq"
)

// ErrUserNotFound is returned when no user matches a lookup
var ErrUserNotFound = errors.New("user not found")

// ErrLogNotFound is returned when no expense log of the user matches an id
var ErrLogNotFound = errors.New("expense log not found")

// ErrEmailTaken is returned when registering an email that already exists
var ErrEmailTaken = errors.New("email already registered")

// uniqueViolation is the Postgres error code for unique constraint failures
const uniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ParseUserID converts a user identifier to a database id. Malformed
// identifiers report ok == false.
func ParseUserID(userID string) (int64, bool) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Ping checks the database connection
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO easyliving.users (name, email, password_hash, monthly_income, avg_monthly_spending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.MonthlyIncome, user.AvgMonthlySpending).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

const userColumns = `id, name, email, password_hash, monthly_income, avg_monthly_spending, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.MonthlyIncome, &user.AvgMonthlySpending, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM easyliving.users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM easyliving.users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// ListUsers returns every user with an email address
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM easyliving.users WHERE email <> '' ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.MonthlyIncome, &u.AvgMonthlySpending, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateFinancials sets a user's monthly income and average spending
func (r *Repository) UpdateFinancials(ctx context.Context, id int64, profile models.FinancialProfile) error {
	query := `
		UPDATE easyliving.users
		SET monthly_income = $2, avg_monthly_spending = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, profile.MonthlyIncome, profile.AvgMonthlySpending)
	if err != nil {
		return fmt.Errorf("failed to update financials: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update financials: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindProfile returns the financial profile for a user id. Unknown or
// malformed ids return nil without an error.
func (r *Repository) FindProfile(ctx context.Context, userID string) (*models.FinancialProfile, error) {
	id, ok := ParseUserID(userID)
	if !ok {
		return nil, nil
	}
	profile := &models.FinancialProfile{}
	query := `SELECT monthly_income, avg_monthly_spending FROM easyliving.users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&profile.MonthlyIncome, &profile.AvgMonthlySpending)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// CreateExpenseLog stores an expense log, filling in the total from the
// category amounts
func (r *Repository) CreateExpenseLog(ctx context.Context, log *models.ExpenseLog) error {
	log.Total = log.CategorySum()
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO easyliving.expense_logs
			(user_id, logged_at, food_expense, transport_expense, personal_expense, medical_expense, total_expense)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, log.UserID, log.LoggedAt,
		log.Food, log.Transport, log.Personal, log.Medical, log.Total).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to create expense log: %w", err)
	}
	return nil
}

const logColumns = `id, user_id, logged_at, food_expense, transport_expense, personal_expense, medical_expense, total_expense`

func scanLogs(rows *sql.Rows) ([]models.ExpenseLog, error) {
	defer rows.Close()
	var logs []models.ExpenseLog
	for rows.Next() {
		var l models.ExpenseLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.LoggedAt, &l.Food, &l.Transport, &l.Personal, &l.Medical, &l.Total); err != nil {
			return nil, fmt.Errorf("failed to scan expense log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expense logs: %w", err)
	}
	return logs, nil
}

// FindRecentLogs returns a user's expense logs from the last windowDays
// days, oldest first. Malformed ids have no logs.
func (r *Repository) FindRecentLogs(ctx context.Context, userID string, windowDays int) ([]models.ExpenseLog, error) {
	id, ok := ParseUserID(userID)
	if !ok {
		return nil, nil
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)
	query := `SELECT ` + logColumns + `
		FROM easyliving.expense_logs
		WHERE user_id = $1 AND logged_at >= $2
		ORDER BY logged_at`
	rows, err := r.db.QueryContext(ctx, query, id, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense logs: %w", err)
	}
	return scanLogs(rows)
}

// ListExpenseLogs returns up to limit of a user's expense logs, newest first
func (r *Repository) ListExpenseLogs(ctx context.Context, userID int64, limit int) ([]models.ExpenseLog, error) {
	query := `SELECT ` + logColumns + `
		FROM easyliving.expense_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC, id DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense logs: %w", err)
	}
	return scanLogs(rows)
}

// DeleteExpenseLog removes one of the user's expense logs
func (r *Repository) DeleteExpenseLog(ctx context.Context, userID, logID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM easyliving.expense_logs WHERE id = $1 AND user_id = $2`, logID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense log: %w", err)
	}
	if n == 0 {
		return ErrLogNotFound
	}
	return nil
}

// DailyTotals returns per-day expense totals for the user's most recent
// logged days, oldest first
func (r *Repository) DailyTotals(ctx context.Context, userID int64, days int) ([]models.DailyExpense, error) {
	query := `
		SELECT day, total FROM (
			SELECT to_char(logged_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			       SUM(food_expense + transport_expense + personal_expense + medical_expense) AS total
			FROM easyliving.expense_logs
			WHERE user_id = $1
			GROUP BY day
			ORDER BY day DESC
			LIMIT $2
		) recent
		ORDER BY day`
	rows, err := r.db.QueryContext(ctx, query, userID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	defer rows.Close()

	var totals []models.DailyExpense
	for rows.Next() {
		var d models.DailyExpense
		if err := rows.Scan(&d.Date, &d.Total); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals = append(totals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}
	return totals, nil
}
