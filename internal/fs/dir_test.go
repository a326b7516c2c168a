package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	d, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	names := d.Names()
	if len(names) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(names))
	}
	// os.ReadDir sorts by name.
	if names[0] != "a.txt" || names[1] != "b.txt" || names[2] != "sub" {
		t.Errorf("unexpected order: %v", names)
	}

	if got := d.Join("a.txt"); got != filepath.Join(dir, "a.txt") {
		t.Errorf("Join returned %q", got)
	}
}

func TestReadDir_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDir(path); err == nil {
		t.Error("expected error reading a file as a directory")
	}
}

func TestFiles_ParentReference(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "one.log"), []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "two"), 0o755); err != nil {
		t.Fatal(err)
	}

	d, err := ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	files := d.Files()
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	for _, f := range files {
		if f.Parent != d {
			t.Errorf("%s: expected parent reference to the listing", f.Name)
		}
		if f.Path != d.Join(f.Name) {
			t.Errorf("%s: path %q does not join onto the directory", f.Name, f.Path)
		}
	}
}

func TestToDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "inner.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := NewFile(dir, nil, "")
	if err != nil {
		t.Fatal(err)
	}

	d, err := f.ToDir()
	if err != nil {
		t.Fatalf("ToDir failed: %v", err)
	}
	if len(d.Names()) != 1 || d.Names()[0] != "inner.txt" {
		t.Errorf("unexpected listing: %v", d.Names())
	}
}
