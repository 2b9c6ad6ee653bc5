package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlSet = `puzzles:
  - name: classic
    rows:
      - "530070000"
      - "600195000"
      - "098000060"
      - "800060003"
      - "400803001"
      - "700020006"
      - "060000280"
      - "000419005"
      - "000080079"
  - rows:
      - "........."
      - "........."
      - "........."
      - "........."
      - "....5...."
      - "........."
      - "........."
      - "........."
      - "........."
`

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAMLSet(t *testing.T) {
	path := write(t, "set.yaml", yamlSet)
	puzzles, err := NewFS().LoadPuzzles(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadPuzzles failed: %v", err)
	}
	if len(puzzles) != 2 {
		t.Fatalf("got %d puzzles, want 2", len(puzzles))
	}
	if puzzles[0].Name != "classic" {
		t.Errorf("name = %q, want classic", puzzles[0].Name)
	}
	if puzzles[1].Name != "puzzle-2" {
		t.Errorf("unnamed puzzle got %q, want puzzle-2", puzzles[1].Name)
	}
	if puzzles[0].Givens[0][0] != 5 || puzzles[0].Givens[0][2] != 0 {
		t.Errorf("first row parsed wrong: %v", puzzles[0].Givens[0])
	}
	if puzzles[1].Givens[4][4] != 5 {
		t.Errorf("dot format parsed wrong: %v", puzzles[1].Givens[4])
	}
}

func TestLoadYAMLRejectsDuplicateNames(t *testing.T) {
	dup := strings.Replace(yamlSet, "- rows:", "- name: classic\n    rows:", 1)
	path := write(t, "dup.yaml", dup)
	if _, err := NewFS().LoadPuzzles(context.Background(), path); err == nil {
		t.Fatal("duplicate names accepted")
	}
}

func TestLoadYAMLRejectsBadCells(t *testing.T) {
	bad := strings.Replace(yamlSet, `"530070000"`, `"53a070000"`, 1)
	path := write(t, "bad.yaml", bad)
	if _, err := NewFS().LoadPuzzles(context.Background(), path); err == nil {
		t.Fatal("bad cell accepted")
	}
}

func TestLoadLineFormat(t *testing.T) {
	content := strings.Join([]string{
		"# header noise",
		"",
		"530070000600195000098000060800060003400803001700020006060000280000419005000080079",
		"too short",
		strings.Repeat(".", 80) + "5",
	}, "\n") + "\n"
	path := write(t, "puzzles.txt", content)
	puzzles, err := NewFS().LoadPuzzles(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadPuzzles failed: %v", err)
	}
	if len(puzzles) != 2 {
		t.Fatalf("got %d puzzles, want 2", len(puzzles))
	}
	if puzzles[0].Givens[0][0] != 5 {
		t.Errorf("first grid parsed wrong: %v", puzzles[0].Givens[0])
	}
	if puzzles[1].Givens[8][8] != 5 {
		t.Errorf("second grid parsed wrong: %v", puzzles[1].Givens[8])
	}
	if !strings.HasPrefix(puzzles[0].Name, "puzzles.txt#") {
		t.Errorf("name = %q, want puzzles.txt#N", puzzles[0].Name)
	}
}
