package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlesolver/internal/api/handler"
	"github.com/mcoot/puzzlesolver/internal/api/middleware"
	"github.com/mcoot/puzzlesolver/internal/api/response"
	"github.com/mcoot/puzzlesolver/internal/model"
	sharedmw "github.com/mcoot/puzzlesolver/internal/middleware"
	"github.com/mcoot/puzzlesolver/internal/services/solver"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	SolverController *solver.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	solveHandler := handler.NewSolveHandler(cfg.SolverController)
	runsHandler := handler.NewRunsHandler(cfg.SolverController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(sharedmw.Logging(cfg.Logger))

	// Solve routes
	api.HandleFunc("/solve/{puzzle}", solveHandler.Solve).Methods(http.MethodPost)

	// Run history routes
	api.HandleFunc("/runs", runsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/runs/{id}", runsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	puzzles := make([]string, 0, len(model.PuzzleKinds))
	for _, k := range model.PuzzleKinds {
		puzzles = append(puzzles, string(k))
	}
	response.JSON(w, http.StatusOK, response.Health{Status: "ok", Puzzles: puzzles})
}
