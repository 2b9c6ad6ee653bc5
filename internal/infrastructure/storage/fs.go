package storage

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"svw.info/sudoku-solver/internal/domain"
)

// FS reads puzzle and solution collections from disk. Two formats are
// supported, picked by extension: YAML puzzle sets (.yaml/.yml) and plain
// text files with one 81-character grid per line ('0' or '.' = unknown).
type FS struct{}

func NewFS() *FS { return &FS{} }

type puzzleRec struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

type setFile struct {
	Puzzles []puzzleRec `yaml:"puzzles"`
}

func (s *FS) LoadPuzzles(ctx context.Context, path string) ([]domain.Puzzle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return s.loadYAML(path)
	default:
		return s.loadLines(path)
	}
}

// LoadSolutions reads an expected-solution collection. Solutions use the
// same formats as puzzles and are aligned with them by position.
func (s *FS) LoadSolutions(ctx context.Context, path string) ([]domain.Puzzle, error) {
	return s.LoadPuzzles(ctx, path)
}

func (s *FS) loadYAML(path string) ([]domain.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set setFile
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if dup := lo.FindDuplicatesBy(set.Puzzles, func(p puzzleRec) string { return p.Name }); len(dup) > 0 {
		return nil, fmt.Errorf("%s: duplicate puzzle name %q", path, dup[0].Name)
	}
	out := make([]domain.Puzzle, 0, len(set.Puzzles))
	for i, rec := range set.Puzzles {
		name := rec.Name
		if name == "" {
			name = fmt.Sprintf("puzzle-%d", i+1)
		}
		gv, err := parseRows(rec.Rows)
		if err != nil {
			return nil, fmt.Errorf("%s: puzzle %q: %w", path, name, err)
		}
		out = append(out, domain.Puzzle{Name: name, Givens: gv})
	}
	return out, nil
}

// loadLines reads one 81-character grid per line, skipping any line of a
// different length (headers, blanks, comments).
func (s *FS) loadLines(path string) ([]domain.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []domain.Puzzle
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) != 81 {
			continue
		}
		var rows [9]string
		for i := range rows {
			rows[i] = line[i*9 : (i+1)*9]
		}
		gv, err := parseRows(rows[:])
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, len(out)+1, err)
		}
		out = append(out, domain.Puzzle{
			Name:   fmt.Sprintf("%s#%d", filepath.Base(path), len(out)+1),
			Givens: gv,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseRows(rows []string) (domain.Givens, error) {
	var gv domain.Givens
	if len(rows) != 9 {
		return gv, fmt.Errorf("expected 9 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 9 {
			return gv, fmt.Errorf("row %d: expected 9 cells, got %d", i+1, len(row))
		}
		for j := 0; j < 9; j++ {
			switch ch := row[j]; {
			case ch == '0' || ch == '.':
				gv[i][j] = 0
			case ch >= '1' && ch <= '9':
				gv[i][j] = ch - '0'
			default:
				return gv, fmt.Errorf("row %d: bad cell %q", i+1, ch)
			}
		}
	}
	return gv, nil
}
