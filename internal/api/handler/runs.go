package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlesolver/internal/api/response"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/services/solver"
)

// RunsHandler handles run history endpoints
type RunsHandler struct {
	solverController *solver.Controller
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(solverController *solver.Controller) *RunsHandler {
	return &RunsHandler{
		solverController: solverController,
	}
}

// Get handles GET /api/v1/runs/{id}
func (h *RunsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	run, err := h.solverController.GetRun(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunFromModel(run))
}

// List handles GET /api/v1/runs?puzzle=&limit=
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, NewInvalidRequestError("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	runs, err := h.solverController.ListRuns(r.Context(), model.PuzzleKind(query.Get("puzzle")), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunListFromModel(runs))
}
