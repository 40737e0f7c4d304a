package models

// DailyExpense represents the summed expenses for one calendar day
type DailyExpense struct {
	Date  string  `json:"date"` // Format: YYYY-MM-DD
	Total float64 `json:"total"`
}

// RecentExpenses is the daily totals of the last days, oldest first
type RecentExpenses struct {
	Days           []DailyExpense `json:"days"`
	RecentExpenses []float64      `json:"recent_expenses"`
}
