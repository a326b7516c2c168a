package handler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/statiolake/exa/internal/config"
	efs "github.com/statiolake/exa/internal/fs"
)

func newFile(t *testing.T, path string) *efs.File {
	t.Helper()
	f, err := efs.NewFile(path, nil, "")
	if err != nil {
		t.Fatalf("NewFile(%s) failed: %v", path, err)
	}
	return f
}

func TestRenderNode_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	if err := os.WriteFile(path, []byte("a,b,c"), 0o644); err != nil {
		t.Fatal(err)
	}

	node := renderNode(newFile(t, path), "data/report.csv", execPolicy(config.DefaultConfig()))

	if node.Name != "report.csv" {
		t.Errorf("expected name report.csv, got %q", node.Name)
	}
	if node.Type != "file" || node.TypeChar != "-" {
		t.Errorf("unexpected type: %s/%s", node.Type, node.TypeChar)
	}
	if node.Size == nil || *node.Size != 5 {
		t.Errorf("expected 5-byte size, got %v", node.Size)
	}
	if node.Device != nil {
		t.Error("regular file must not report device IDs")
	}
	if node.Link != nil {
		t.Error("regular file must not report a link target")
	}
	if node.ModTime == nil {
		t.Error("expected a modification time")
	}
}

func TestRenderNode_Directory(t *testing.T) {
	node := renderNode(newFile(t, t.TempDir()), "", execPolicy(config.DefaultConfig()))

	if node.Type != "directory" || node.TypeChar != "d" {
		t.Errorf("unexpected type: %s/%s", node.Type, node.TypeChar)
	}
	if node.Size != nil {
		t.Error("directories must not report a size")
	}
}

func TestRenderNode_BrokenLink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	if err := os.Symlink("missing.txt", link); err != nil {
		t.Skipf("cannot create symlinks here: %v", err)
	}

	node := renderNode(newFile(t, link), "", execPolicy(config.DefaultConfig()))

	if node.Type != "link" {
		t.Errorf("expected type link, got %s", node.Type)
	}
	if node.Link == nil {
		t.Fatal("expected a link descriptor")
	}
	if !node.Link.Broken {
		t.Error("expected a broken link")
	}
	if node.Link.Target != "missing.txt" {
		t.Errorf("expected raw destination missing.txt, got %q", node.Link.Target)
	}
}

func TestBuildTree_Filters(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "node_modules"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	h := NewTreeHandler(cfg)

	root := h.buildTree(newFile(t, dir), "", 0, "work", nil, execPolicy(cfg))
	if len(root.Children) != 1 || root.Children[0].Name != "keep.txt" {
		names := make([]string, len(root.Children))
		for i, c := range root.Children {
			names[i] = c.Name
		}
		t.Fatalf("expected only keep.txt, got %v", names)
	}
	if root.Children[0].Path != "work/keep.txt" {
		t.Errorf("expected alias-prefixed path, got %q", root.Children[0].Path)
	}

	cfg.ShowHidden = true
	root = h.buildTree(newFile(t, dir), "", 0, "work", nil, execPolicy(cfg))
	if len(root.Children) != 2 {
		t.Errorf("expected dotfile to appear with show_hidden, got %d children", len(root.Children))
	}
}
