package models

import "time"

// Category is an expense category tracked in expense logs
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryPersonal  Category = "personal"
	CategoryMedical   Category = "medical"
)

// Categories lists every tracked category in reporting order
var Categories = []Category{CategoryFood, CategoryTransport, CategoryPersonal, CategoryMedical}

// ExpenseLog represents one logged set of expenses
type ExpenseLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	LoggedAt  time.Time `json:"date"`
	Food      float64   `json:"food_expense"`
	Transport float64   `json:"transport_expense"`
	Personal  float64   `json:"personal_expense"`
	Medical   float64   `json:"medical_expense"`
	Total     float64   `json:"total_expense"`
}

// Amount returns the amount logged for a category
func (l ExpenseLog) Amount(c Category) float64 {
	switch c {
	case CategoryFood:
		return l.Food
	case CategoryTransport:
		return l.Transport
	case CategoryPersonal:
		return l.Personal
	case CategoryMedical:
		return l.Medical
	}
	return 0
}

// CategorySum returns the sum of all category amounts
func (l ExpenseLog) CategorySum() float64 {
	return l.Food + l.Transport + l.Personal + l.Medical
}

// DayTotal returns Total, or the category sum when Total was never filled in
func (l ExpenseLog) DayTotal() float64 {
	if l.Total != 0 {
		return l.Total
	}
	return l.CategorySum()
}
