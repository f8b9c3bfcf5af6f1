package life

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, dims := range [][2]int{{1, 1}, {1, 9}, {7, 1}, {16, 24}} {
		g, err := New(dims[0], dims[1], true, WithSeed(uint64(dims[0]*100+dims[1])))
		if err != nil {
			t.Fatal(err)
		}
		g.Step()

		path := filepath.Join(dir, "grid.txt")
		if err := g.Save(path); err != nil {
			t.Fatalf("save %dx%d: %v", dims[0], dims[1], err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("load %dx%d: %v", dims[0], dims[1], err)
		}

		if !loaded.Snapshot().Equal(g.Snapshot()) {
			t.Errorf("%dx%d grid changed across save and load", dims[0], dims[1])
		}
		if loaded.Generation() != 1 {
			t.Errorf("loaded generation = %d, want 1", loaded.Generation())
		}
		if loaded.IsChanging() != (loaded.Population() > 0) {
			t.Errorf("loaded previous generation should be all dead")
		}
	}
}

func TestSaveFormat(t *testing.T) {
	g := mustRead(t, "010\n001\n111\n")
	path := filepath.Join(t.TempDir(), "glider.txt")
	if err := g.Save(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "010\n001\n111\n"; got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != string(data) {
		t.Fatal("Encode and Save disagree")
	}
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"ragged":  "0101\n01\n0101\n",
		"letters": "01x\n",
		"empty":   "",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".txt")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			g, err := Load(path)
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("got %v, want ErrFormat", err)
			}
			if g != nil {
				t.Fatal("malformed file produced a game")
			}
		})
	}
}

func TestLoadFailureLeavesExistingGame(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("01\n0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	g := mustRead(t, "11\n11\n")
	before := g.Snapshot()
	if loaded, err := Load(bad); err == nil || loaded != nil {
		t.Fatalf("Load(bad) = %v, %v", loaded, err)
	}
	if !g.Snapshot().Equal(before) || g.Generation() != 1 {
		t.Fatal("failed load touched an existing game")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrFormat) {
		t.Fatal("missing file reported as a format error")
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	g := mustRead(t, "1\n")
	err := g.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "grid.txt"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want fs.ErrNotExist", err)
	}
}

func TestLoadAppliesOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := os.WriteFile(path, []byte("000\n111\n000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path, WithMaxGenerations(2))
	if err != nil {
		t.Fatal(err)
	}
	if g.IsMaxGenerationsExceeded() {
		t.Fatal("limit reached before stepping")
	}
	g.Step()
	if !g.IsMaxGenerationsExceeded() {
		t.Fatal("limit of 2 not reached at generation 2")
	}

	if _, err := Load(path, WithMaxGenerations(-3)); !errors.Is(err, ErrInvalidGenerationLimit) {
		t.Fatalf("got %v, want ErrInvalidGenerationLimit", err)
	}
}
