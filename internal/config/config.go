package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Predictor backends
const (
	PredictorPMML = "pmml"
	PredictorHTTP = "http"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBConn    string
	LogLevel  string
	JWTSecret string
	TokenTTL  time.Duration

	Predictor      string
	ModelPath      string
	ModelFeature   string
	MLAPIURL       string
	PredictTimeout time.Duration
	StoreTimeout   time.Duration

	DefaultMonthlyIncome      float64
	DefaultAvgMonthlySpending float64

	CORSOrigins   []string
	AuthRateLimit float64
	AuthRateBurst int

	DigestSchedule string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory is read first; variables already set take precedence.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var err error
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBConn:         getEnv("DB_CONN", "host=localhost port=5432 user=easyliving password=easyliving dbname=easyliving sslmode=disable"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		Predictor:      strings.ToLower(getEnv("PREDICTOR", PredictorPMML)),
		ModelPath:      getEnv("MODEL_PATH", "models/expense_model.pmml"),
		ModelFeature:   getEnv("MODEL_FEATURE", "avg7_total"),
		MLAPIURL:       getEnv("ML_API_URL", "http://127.0.0.1:8000"),
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", ""),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "25"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "no-reply@easyliving.local"),
	}

	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.PredictTimeout, err = getDuration("PREDICT_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.StoreTimeout, err = getDuration("STORE_TIMEOUT", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.AuthRateLimit, err = getFloat("AUTH_RATE_LIMIT", 5); err != nil {
		return nil, err
	}
	burst, err := getFloat("AUTH_RATE_BURST", 10)
	if err != nil {
		return nil, err
	}
	cfg.AuthRateBurst = int(burst)
	if cfg.DefaultMonthlyIncome, err = getFloat("DEFAULT_MONTHLY_INCOME", 25000); err != nil {
		return nil, err
	}
	if cfg.DefaultAvgMonthlySpending, err = getFloat("DEFAULT_AVG_MONTHLY_SPENDING", 18000); err != nil {
		return nil, err
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	switch cfg.Predictor {
	case PredictorPMML:
		if cfg.ModelPath == "" {
			return nil, fmt.Errorf("MODEL_PATH is required for the pmml predictor")
		}
	case PredictorHTTP:
		if cfg.MLAPIURL == "" {
			return nil, fmt.Errorf("ML_API_URL is required for the http predictor")
		}
	default:
		return nil, fmt.Errorf("unknown PREDICTOR %q", cfg.Predictor)
	}
	if cfg.DefaultMonthlyIncome <= 0 {
		return nil, fmt.Errorf("DEFAULT_MONTHLY_INCOME must be positive")
	}
	if cfg.DefaultAvgMonthlySpending <= 0 {
		return nil, fmt.Errorf("DEFAULT_AVG_MONTHLY_SPENDING must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
