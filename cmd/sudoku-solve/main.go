package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/samber/lo"

	"svw.info/sudoku-solver/internal/batch"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

var (
	flagInput    = flag.String("input", "", "puzzle set file (.yaml or 81-char lines)")
	flagExpected = flag.String("solutions", "", "optional expected-solution set, aligned by position")
	flagParallel = flag.Bool("parallel", false, "use row-parallel propagation")
	flagBatch    = flag.Bool("batch", false, "solve all puzzles concurrently, one task per puzzle")
	flagBench    = flag.Int("bench", 0, "repeat each solve N times and report the mean")
	flagProfile  = flag.Bool("cpuprofile", false, "write a CPU profile for the run")
	flagLogLevel = flag.String("log-level", "info", "debug|info|warn|error")
	flagQuiet    = flag.Bool("quiet", false, "suppress solution grids, print summaries only")
)

func main() {
	flag.Parse()
	logger := newLogger(*flagLogLevel)
	if *flagInput == "" {
		logger.Error("missing -input")
		os.Exit(2)
	}
	if *flagProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	uc := usecase.NewService(
		solver.NewEngine(),
		solver.NewParallelEngine(),
		validator.New(),
		storage.NewFS(),
	)
	ctx := context.Background()

	puzzles, err := uc.LoadPuzzles(ctx, *flagInput)
	if err != nil {
		logger.Error("load puzzles", "err", err)
		os.Exit(1)
	}
	var expected []domain.Puzzle
	if *flagExpected != "" {
		expected, err = uc.LoadSolutions(ctx, *flagExpected)
		if err != nil {
			logger.Error("load solutions", "err", err)
			os.Exit(1)
		}
		if len(expected) != len(puzzles) {
			logger.Error("solution set size mismatch", "puzzles", len(puzzles), "solutions", len(expected))
			os.Exit(1)
		}
	}
	logger.Info("loaded", "puzzles", len(puzzles), "input", *flagInput)

	switch {
	case *flagBench > 0:
		runBench(ctx, logger, uc, puzzles, *flagBench)
	case *flagBatch:
		runBatch(ctx, logger, uc, puzzles, expected)
	default:
		runSequential(ctx, logger, uc, puzzles, expected)
	}
}

func runSequential(ctx context.Context, logger *slog.Logger, uc *usecase.Service, puzzles, expected []domain.Puzzle) {
	run := uc.Solve
	if *flagParallel {
		run = uc.SolveParallel
	}
	failed := 0
	for i, p := range puzzles {
		sol, st, err := run(ctx, p.Givens)
		if err != nil {
			logger.Error("solve", "puzzle", p.Name, "err", err)
			os.Exit(1)
		}
		if sol.Contradiction() {
			logger.Warn("no solution", "puzzle", p.Name)
			failed++
			continue
		}
		logger.Info("solved", "puzzle", p.Name,
			"guesses", st.Guesses, "cycles", st.Cycles, "dur", st.Duration)
		if !*flagQuiet {
			fmt.Print(sol)
		}
		if expected != nil && sol.Digits() != expected[i].Givens {
			logger.Error("solution differs from expected", "puzzle", p.Name)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runBatch(ctx context.Context, logger *slog.Logger, uc *usecase.Service, puzzles, expected []domain.Puzzle) {
	results, err := uc.SolveBatch(ctx, puzzles)
	if err != nil {
		logger.Error("batch solve", "err", err)
		os.Exit(1)
	}
	unsolved := lo.Filter(results, func(r batch.Result, _ int) bool {
		return r.Solution.Contradiction()
	})
	logger.Info("batch done", "puzzles", len(results), "unsolved", len(unsolved))
	for _, r := range unsolved {
		logger.Warn("no solution", "puzzle", r.Name)
	}
	mismatched := 0
	for i, r := range results {
		if !*flagQuiet && !r.Solution.Contradiction() {
			fmt.Printf("%s\n%s", r.Name, r.Solution)
		}
		if expected != nil && !r.Solution.Contradiction() && r.Solution.Digits() != expected[i].Givens {
			logger.Error("solution differs from expected", "puzzle", r.Name)
			mismatched++
		}
	}
	if len(unsolved) > 0 || mismatched > 0 {
		os.Exit(1)
	}
}

func runBench(ctx context.Context, logger *slog.Logger, uc *usecase.Service, puzzles []domain.Puzzle, runs int) {
	for _, p := range puzzles {
		mean, err := uc.Benchmark(ctx, p.Givens, runs)
		if err != nil {
			logger.Error("benchmark", "puzzle", p.Name, "err", err)
			os.Exit(1)
		}
		logger.Info("benchmark", "puzzle", p.Name, "runs", runs, "mean", mean)
	}
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
