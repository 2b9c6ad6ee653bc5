package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solver/internal/batch"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Service wires the solving engines to their external collaborators.
type Service struct {
	Solver    ports.Solver // sequential propagation
	Parallel  ports.Solver // row-parallel propagation
	Validator ports.Validator
	Source    ports.PuzzleSource
}

func NewService(s, p ports.Solver, v ports.Validator, src ports.PuzzleSource) *Service {
	return &Service{Solver: s, Parallel: p, Validator: v, Source: src}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Givens) (domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) SolveParallel(ctx context.Context, g domain.Givens) (domain.Solution, ports.Stats, error) {
	if u.Parallel == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Parallel.Solve(ctx, g)
}

// SolveBatch solves every puzzle of a collection concurrently, one task
// per puzzle, and returns per-puzzle results in input order.
func (u *Service) SolveBatch(ctx context.Context, puzzles []domain.Puzzle) ([]batch.Result, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	return batch.SolveAll(ctx, u.Solver, puzzles)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Benchmark repeats a sequential solve and reports the mean elapsed time.
func (u *Service) Benchmark(ctx context.Context, g domain.Givens, runs int) (time.Duration, error) {
	if u.Solver == nil {
		return 0, errNotConfigured
	}
	if runs < 1 {
		return 0, errors.New("benchmark needs at least one run")
	}
	start := time.Now()
	for i := 0; i < runs; i++ {
		if _, _, err := u.Solver.Solve(ctx, g); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(runs), nil
}

// Persistence passthroughs.
func (u *Service) LoadPuzzles(ctx context.Context, path string) ([]domain.Puzzle, error) {
	if u.Source == nil {
		return nil, errNotConfigured
	}
	return u.Source.LoadPuzzles(ctx, path)
}

func (u *Service) LoadSolutions(ctx context.Context, path string) ([]domain.Puzzle, error) {
	if u.Source == nil {
		return nil, errNotConfigured
	}
	return u.Source.LoadSolutions(ctx, path)
}
