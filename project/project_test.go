package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	content := "name: my-house\nblueprints_dir: plans\nnudge: 0.5\ntemplates:\n  - name: Piano\n    width: 5\n    height: 2\n"
	if err := os.WriteFile(filepath.Join(root, "modelum.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "my-house" {
		t.Errorf("Name = %q, want my-house", cfg.Name)
	}
	if cfg.BlueprintsDir != "plans" {
		t.Errorf("BlueprintsDir = %q, want plans", cfg.BlueprintsDir)
	}
	if cfg.Nudge != 0.5 {
		t.Errorf("Nudge = %v, want 0.5", cfg.Nudge)
	}
	if len(cfg.Templates) != 1 || cfg.Templates[0].Name != "Piano" {
		t.Errorf("Templates = %v, want the Piano override", cfg.Templates)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "modelum.yaml"), []byte("name: sparse\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BlueprintsDir != "blueprints" {
		t.Errorf("BlueprintsDir = %q, want default", cfg.BlueprintsDir)
	}
	if cfg.Nudge != 0.2 {
		t.Errorf("Nudge = %v, want default 0.2", cfg.Nudge)
	}
	if len(cfg.Templates) == 0 {
		t.Error("Templates must fall back to the built-in palette")
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "modelum.yaml"), []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}
	got, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	// Resolve symlinks; temp dirs are often behind one on macOS.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("FindProjectRoot = %q, want %q", got, root)
	}
}
