package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/easyliving-service/internal/config"
	"github.com/Dan9191/easyliving-service/internal/digest"
	"github.com/Dan9191/easyliving-service/internal/forecast"
	"github.com/Dan9191/easyliving-service/internal/handler"
	"github.com/Dan9191/easyliving-service/internal/integrations/mlapi"
	"github.com/Dan9191/easyliving-service/internal/integrations/pmml"
	"github.com/Dan9191/easyliving-service/internal/middleware"
	"github.com/Dan9191/easyliving-service/internal/repository"
	"github.com/Dan9191/easyliving-service/internal/service"
	"github.com/Dan9191/easyliving-service/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// The ML API serves mood predictions and, optionally, expense predictions
	mlClient := mlapi.NewClient(cfg.MLAPIURL, cfg.PredictTimeout, logger)
	predictor, predictorHealth := loadPredictor(cfg, mlClient, logger)

	// Initialize layers
	repo := repository.NewRepository(db)
	engine := forecast.NewEngine(forecast.Deps{
		Predictor: predictor,
		Profiles:  repo,
		Logs:      repo,
		Logger:    logger,
	}, forecast.Options{
		PredictTimeout:  cfg.PredictTimeout,
		StoreTimeout:    cfg.StoreTimeout,
		DefaultIncome:   cfg.DefaultMonthlyIncome,
		DefaultSpending: cfg.DefaultAvgMonthlySpending,
	})
	svc := service.NewService(repo, engine, mlClient, logger, cfg)
	h := handler.NewHandler(svc, logger)
	h.AddHealthCheck("database", repo.Ping)
	h.AddHealthCheck("expense_model", predictorHealth)

	// Weekly forecast digest
	if cfg.DigestSchedule != "" {
		job := digest.NewJob(repo, svc, email.NewSender(cfg, logger), logger)
		scheduler, err := digest.NewScheduler(cfg.DigestSchedule, job, logger)
		if err != nil {
			logger.Fatalf("Failed to schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Infof("Forecast digest scheduled: %s", cfg.DigestSchedule)
	}

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	// Public routes
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	authLimit := middleware.RateLimit(cfg.AuthRateLimit, cfg.AuthRateBurst)
	r.Handle("/api/auth/register", authLimit(http.HandlerFunc(h.Register))).Methods("POST")
	r.Handle("/api/auth/login", authLimit(http.HandlerFunc(h.Login))).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/auth/profile", h.Profile).Methods("GET")
	authRouter.HandleFunc("/user/update-financial", h.UpdateFinancial).Methods("PUT")
	authRouter.HandleFunc("/logs/expense", h.CreateExpenseLog).Methods("POST")
	authRouter.HandleFunc("/logs/expense", h.ListExpenseLogs).Methods("GET")
	authRouter.HandleFunc("/logs/expense/{id:[0-9]+}", h.DeleteExpenseLog).Methods("DELETE")
	authRouter.HandleFunc("/stats", h.WeeklyStats).Methods("GET")
	authRouter.HandleFunc("/insights/user-expenses/last7", h.RecentExpenses).Methods("GET")
	authRouter.HandleFunc("/ml/predict/expense", h.PredictExpense).Methods("POST")
	authRouter.HandleFunc("/ml/predict/mood", h.PredictMood).Methods("POST")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}

// loadPredictor picks the expense model backend. A missing local model is
// not fatal: forecasts then fail with MODEL_UNAVAILABLE until restart.
func loadPredictor(cfg *config.Config, mlClient *mlapi.Client, logger *logrus.Logger) (forecast.Predictor, handler.HealthCheck) {
	if cfg.Predictor == config.PredictorHTTP {
		logger.Infof("Using remote expense model at %s", cfg.MLAPIURL)
		return mlClient, func(ctx context.Context) error {
			status, err := mlClient.Health(ctx)
			if err != nil {
				return err
			}
			if !status.ModelLoaded {
				return mlapi.ErrModelNotLoaded
			}
			return nil
		}
	}

	model, err := pmml.LoadFile(cfg.ModelPath, cfg.ModelFeature)
	if err != nil {
		logger.Errorf("Error loading expense model: %v", err)
		return nil, func(context.Context) error { return pmml.ErrNotLoaded }
	}
	logger.Infof("Expense model %q loaded from %s", model.Name, cfg.ModelPath)
	return model, func(context.Context) error { return nil }
}
