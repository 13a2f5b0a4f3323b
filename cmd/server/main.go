package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/clearbooks/backend/docs"
	"github.com/clearbooks/backend/internal/config"
	"github.com/clearbooks/backend/internal/database"
	"github.com/clearbooks/backend/internal/handlers"
	"github.com/clearbooks/backend/internal/ledger"
	mW "github.com/clearbooks/backend/internal/middleware"
	"github.com/clearbooks/backend/internal/services"
)

// @title ClearBooks Ledger API
// @version 1.0
// @description Double-entry bookkeeping ledger with accounts, transactions and financial reports
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	serverConfig := config.LoadServerConfig()

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "ClearBooks Ledger API"
	docs.SwaggerInfo.Description = "Double-entry bookkeeping ledger with accounts, transactions and financial reports"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Optional backends. The ledger runs fully in memory; Postgres only
	// archives postings and Redis only caches reports.
	db := database.InitDatabase()
	if db != nil {
		defer db.Close()
	}

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	archiveService := services.NewArchiveService(db)
	if err := archiveService.EnsureSchema(); err != nil {
		log.Printf("Warning: failed to prepare archive schema, continuing without archive: %v", err)
		archiveService = services.NewArchiveService(nil)
	}

	cacheService := services.NewReportCacheService(redisClient)
	cacheService.SetTTL(serverConfig.ReportCacheTTL)
	ledgerService := services.NewLedgerService(ledger.New(), archiveService, cacheService)

	accountHandler := handlers.NewAccountHandler(ledgerService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	reportHandler := handlers.NewReportHandler(ledgerService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(serverConfig.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Chart of accounts
		r.Post("/accounts", accountHandler.CreateAccount)
		r.Get("/accounts", accountHandler.ListAccounts)
		r.Get("/accounts/{id}", accountHandler.GetAccount)
		r.Put("/accounts/{id}", accountHandler.UpdateAccount)
		r.Delete("/accounts/{id}", accountHandler.DeleteAccount)
		r.Get("/accounts/{id}/statement", accountHandler.GetAccountStatement)

		// Journal
		r.Post("/transactions", transactionHandler.CreateTransaction)
		r.Post("/transactions/validate", transactionHandler.ValidateTransaction)
		r.Get("/transactions", transactionHandler.ListTransactions)
		r.Get("/transactions/{id}", transactionHandler.GetTransaction)

		// Reports
		r.Get("/reports/trial-balance", reportHandler.GetTrialBalance)
		r.Get("/reports/balance-sheet", reportHandler.GetBalanceSheet)
		r.Get("/reports/income-statement", reportHandler.GetIncomeStatement)
		r.Get("/reports/summary", reportHandler.GetSummary)
	})

	// Start server
	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      r,
		ReadTimeout:  serverConfig.ReadTimeout,
		WriteTimeout: serverConfig.WriteTimeout,
		IdleTimeout:  serverConfig.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", serverConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
