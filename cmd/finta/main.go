package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/finta-app/finta/internal/auth"
	"github.com/finta-app/finta/internal/config"
	"github.com/finta-app/finta/internal/db"
	"github.com/finta-app/finta/internal/finance/application"
	"github.com/finta-app/finta/internal/finance/infrastructure"
	"github.com/finta-app/finta/internal/finance/interfaces"
	"github.com/finta-app/finta/internal/log"
	"github.com/finta-app/finta/internal/user"
	"github.com/joho/godotenv"
)

type Response struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *db.Service
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	budgetHandler      *interfaces.BudgetHandler
	categoryHandler    *interfaces.CategoryHandler
}

func NewServer(
	dbService *db.Service,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	budgetHandler *interfaces.BudgetHandler,
	categoryHandler *interfaces.CategoryHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		budgetHandler:      budgetHandler,
		categoryHandler:    categoryHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]interface{}{
		"status": "ready",
		"db":     health,
	})
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Users. Identity comes from the provider's session token; sync mirrors
	// the latest claims into our users table.
	router.Handle("POST /api/auth/sync", http.HandlerFunc(s.userHandler.HandleSync))
	router.Handle("GET /api/users/me", http.HandlerFunc(s.userHandler.HandleGetCurrentUser))
	router.Handle("PUT /api/users/me", http.HandlerFunc(s.userHandler.HandleUpsert))
	router.Handle("PATCH /api/users/me/preferences", http.HandlerFunc(s.userHandler.HandleUpdatePreferences))

	// Transactions
	router.Handle("GET /api/transactions", http.HandlerFunc(s.transactionHandler.List))
	router.Handle("POST /api/transactions", http.HandlerFunc(s.transactionHandler.Create))
	router.Handle("PUT /api/transactions/{id}", http.HandlerFunc(s.transactionHandler.Update))
	router.Handle("DELETE /api/transactions/{id}", http.HandlerFunc(s.transactionHandler.Delete))
	router.Handle("GET /api/transactions/stats", http.HandlerFunc(s.transactionHandler.GetStats))
	router.Handle("GET /api/transactions/summary/categories", http.HandlerFunc(s.transactionHandler.GetCategorySummary))
	router.Handle("GET /api/transactions/summary/monthly", http.HandlerFunc(s.transactionHandler.GetMonthlySummary))

	// Budgets
	router.Handle("GET /api/budgets", http.HandlerFunc(s.budgetHandler.List))
	router.Handle("POST /api/budgets", http.HandlerFunc(s.budgetHandler.Create))
	router.Handle("PUT /api/budgets/{id}", http.HandlerFunc(s.budgetHandler.Update))
	router.Handle("DELETE /api/budgets/{id}", http.HandlerFunc(s.budgetHandler.Delete))

	// Categories
	router.Handle("GET /api/categories", http.HandlerFunc(s.categoryHandler.List))
	router.Handle("POST /api/categories", http.HandlerFunc(s.categoryHandler.Create))
	router.Handle("DELETE /api/categories/{id}", http.HandlerFunc(s.categoryHandler.Delete))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, continuing with system environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})
	log.SetDefault(logger)

	dbService, err := db.NewService(cfg.DatabaseURL)
	if err != nil {
		slog.Error("could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	verifier := auth.NewVerifier()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)
	budgetService := application.NewBudgetService(budgetRepo, transactionRepo)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	server := NewServer(dbService, userHandler, transactionHandler, budgetHandler, categoryHandler)
	server.RegisterRoutes()

	handler := log.RequestMiddleware(logger)(
		auth.ResolveSubjectMiddleware(verifier)(server.router))

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
