package request

// SolveRequest is the request body for solving a puzzle input
type SolveRequest struct {
	Input string `json:"input"`
}
