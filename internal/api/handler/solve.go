package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/puzzlesolver/internal/api/request"
	"github.com/mcoot/puzzlesolver/internal/api/response"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/services/solver"
)

// maxInputBytes caps the accepted request body
const maxInputBytes = 16 << 20

// SolveHandler handles puzzle solving endpoints
type SolveHandler struct {
	solverController *solver.Controller
}

// NewSolveHandler creates a new solve handler
func NewSolveHandler(solverController *solver.Controller) *SolveHandler {
	return &SolveHandler{
		solverController: solverController,
	}
}

// Solve handles POST /api/v1/solve/{puzzle}
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	puzzle, err := model.ParsePuzzleKind(mux.Vars(r)["puzzle"])
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SolveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBytes)).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Input == "" {
		WriteError(w, model.ErrEmptyInput)
		return
	}

	run, err := h.solverController.Solve(r.Context(), puzzle, req.Input)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RunFromModel(run))
}
