package models

import "time"

// User represents a registered user
type User struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"` // Not serialized
	MonthlyIncome      float64   `json:"monthly_income"`
	AvgMonthlySpending float64   `json:"avg_monthly_spending"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FinancialProfile is the slice of a user record used to personalize forecasts
type FinancialProfile struct {
	MonthlyIncome      float64 `json:"monthly_income"`
	AvgMonthlySpending float64 `json:"avg_monthly_spending"`
}

// Profile returns the user's financial profile
func (u *User) Profile() FinancialProfile {
	return FinancialProfile{
		MonthlyIncome:      u.MonthlyIncome,
		AvgMonthlySpending: u.AvgMonthlySpending,
	}
}
