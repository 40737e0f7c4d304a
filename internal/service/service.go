package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/easyliving-service/internal/config"
	"github.com/Dan9191/easyliving-service/internal/forecast"
	"github.com/Dan9191/easyliving-service/internal/models"
	"github.com/Dan9191/easyliving-service/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a failed login
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidArgument wraps request validation failures
var ErrInvalidArgument = errors.New("invalid argument")

// MoodPredictor classifies a mood from lifestyle signals
type MoodPredictor interface {
	PredictMood(ctx context.Context, in models.MoodInput) (string, float64, error)
}

// Service handles business logic
type Service struct {
	repo   Store
	engine *forecast.Engine
	mood   MoodPredictor
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo Store, engine *forecast.Engine, mood MoodPredictor, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, engine: engine, mood: mood, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 6 {
		return nil, fmt.Errorf("%w: name, email and a password of at least 6 characters are required", ErrInvalidArgument)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:               name,
		Email:              email,
		PasswordHash:       string(hashedPassword),
		MonthlyIncome:      s.config.DefaultMonthlyIncome,
		AvgMonthlySpending: s.config.DefaultAvgMonthlySpending,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tokenString, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, user, nil
}

// IssueToken signs a token whose subject is the user id
func (s *Service) IssueToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.TokenTTL)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// Profile returns the user record for an authenticated user
func (s *Service) Profile(ctx context.Context, userID string) (*models.User, error) {
	id, ok := repository.ParseUserID(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return s.repo.FindUserByID(ctx, id)
}

// UpdateFinancials stores the income and spending figures used to
// personalize forecasts
func (s *Service) UpdateFinancials(ctx context.Context, userID string, profile models.FinancialProfile) (*models.User, error) {
	if profile.MonthlyIncome < 0 || profile.AvgMonthlySpending < 0 {
		return nil, fmt.Errorf("%w: income and spending must not be negative", ErrInvalidArgument)
	}
	id, ok := repository.ParseUserID(userID)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	if err := s.repo.UpdateFinancials(ctx, id, profile); err != nil {
		return nil, err
	}

	s.log.Infof("Financial details updated for user %d", id)
	return s.repo.FindUserByID(ctx, id)
}
