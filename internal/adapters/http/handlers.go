package httpadapter

import (
	"encoding/json"
	"net/http"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/batch", h.handleBatch)
	mux.HandleFunc("/api/validate", h.handleValidate)
}

// ---- Solve ----

type solveReq struct {
	Board    domain.Givens `json:"board"`
	Parallel bool          `json:"parallel,omitempty"`
}
type solveResp struct {
	Board      domain.Givens `json:"board,omitempty"`
	Solvable   bool          `json:"solvable"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Guesses    int           `json:"guesses,omitempty"`
	Cycles     int           `json:"cycles,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	run := h.UC.Solve
	if req.Parallel {
		run = h.UC.SolveParallel
	}
	sol, st, err := run(r.Context(), req.Board)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Board:      sol.Digits(),
		Solvable:   !sol.Contradiction(),
		DurationMs: st.Duration.Milliseconds(),
		Guesses:    st.Guesses,
		Cycles:     st.Cycles,
	})
}

// ---- Batch ----

type batchReq struct {
	Puzzles []domain.Puzzle `json:"puzzles"`
}
type batchResult struct {
	Name     string        `json:"name"`
	Board    domain.Givens `json:"board,omitempty"`
	Solvable bool          `json:"solvable"`
	Guesses  int           `json:"guesses,omitempty"`
}
type batchResp struct {
	Results []batchResult `json:"results,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) handleBatch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req batchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(batchResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	results, err := h.UC.SolveBatch(r.Context(), req.Puzzles)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(batchResp{Error: err.Error()})
		return
	}
	resp := batchResp{Results: make([]batchResult, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, batchResult{
			Name:     res.Name,
			Board:    res.Solution.Digits(),
			Solvable: !res.Solution.Contradiction(),
			Guesses:  res.Stats.Guesses,
		})
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Validate ----

type validateReq struct {
	Board domain.Givens `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), solver.Fill(req.Board))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}
