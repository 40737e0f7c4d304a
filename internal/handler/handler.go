package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Dan9191/easyliving-service/internal/forecast"
	"github.com/Dan9191/easyliving-service/internal/middleware"
	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/Dan9191/easyliving-service/internal/repository"
	"github.com/Dan9191/easyliving-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// HealthCheck reports whether a dependency is usable
type HealthCheck func(ctx context.Context) error

type Handler struct {
	svc    *service.Service
	log    *logrus.Logger
	checks map[string]HealthCheck
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log, checks: make(map[string]HealthCheck)}
}

// AddHealthCheck registers a dependency reported by /health
func (h *Handler) AddHealthCheck(name string, check HealthCheck) {
	h.checks[name] = check
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type financialRequest struct {
	MonthlyIncome      float64 `json:"monthlyIncome"`
	AvgMonthlySpending float64 `json:"avgMonthlySpending"`
}

// Home reports that the service is running
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "EasyLiving API is running"})
}

// Health reports the state of every registered dependency
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	report := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			report[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	writeJSON(w, status, report)
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	token, err := h.svc.IssueToken(user.ID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Profile returns the authenticated user
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	user, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateFinancial updates the income and spending used for personalization
func (h *Handler) UpdateFinancial(w http.ResponseWriter, r *http.Request) {
	var req financialRequest
	if !decode(w, r, &req) {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	user, err := h.svc.UpdateFinancials(r.Context(), userID, models.FinancialProfile{
		MonthlyIncome:      req.MonthlyIncome,
		AvgMonthlySpending: req.AvgMonthlySpending,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Financial details updated successfully",
		"user":    user,
	})
}

// CreateExpenseLog records an expense log for the authenticated user
func (h *Handler) CreateExpenseLog(w http.ResponseWriter, r *http.Request) {
	var log models.ExpenseLog
	if !decode(w, r, &log) {
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	if err := h.svc.AddExpenseLog(r.Context(), userID, &log); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

// ListExpenseLogs returns the authenticated user's expense logs, newest
// first. ?limit= bounds the count.
func (h *Handler) ListExpenseLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	logs, err := h.svc.ListExpenseLogs(r.Context(), userID, limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// DeleteExpenseLog deletes one of the authenticated user's expense logs
func (h *Handler) DeleteExpenseLog(w http.ResponseWriter, r *http.Request) {
	logID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense log id")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	if err := h.svc.DeleteExpenseLog(r.Context(), userID, logID); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": logID})
}

// WeeklyStats returns the authenticated user's spending summary for the last week
func (h *Handler) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	stats, err := h.svc.WeeklyStats(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// RecentExpenses returns the last 7 logged days of expenses
func (h *Handler) RecentExpenses(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	recent, err := h.svc.RecentExpenses(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recent)
}

// PredictExpense forecasts the user's upcoming daily expenses
func (h *Handler) PredictExpense(w http.ResponseWriter, r *http.Request) {
	var req forecast.Request
	if !decode(w, r, &req) {
		return
	}
	if req.Days < 0 {
		writeError(w, http.StatusBadRequest, "days must not be negative")
		return
	}
	// Only the token decides whose profile is used
	req.UserID, _ = middleware.UserIDFromContext(r.Context())

	res, err := h.svc.ForecastExpenses(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// PredictMood classifies the user's mood
func (h *Handler) PredictMood(w http.ResponseWriter, r *http.Request) {
	var in models.MoodInput
	if !decode(w, r, &in) {
		return
	}
	res, err := h.svc.PredictMood(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps service and engine errors to HTTP statuses
func statusFor(err error) int {
	var fe *forecast.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case forecast.CodeInvalidInput:
			return http.StatusBadRequest
		case forecast.CodeModelUnavailable:
			return http.StatusServiceUnavailable
		default:
			return http.StatusBadGateway
		}
	}
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrLogNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrMoodModelUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("Request failed")
	}
	writeError(w, status, err.Error())
}
