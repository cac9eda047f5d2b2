package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "coltc.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[check]\nsource = \"src\"\njobs = 2\n")

	manifest, ok, err := loadManifest(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !ok {
		t.Fatalf("manifest not found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Fatalf("package name = %q", manifest.Config.Package.Name)
	}
	if manifest.Config.Check.Jobs != 2 {
		t.Fatalf("jobs = %d", manifest.Config.Check.Jobs)
	}
	if got := manifest.sourceDir(); got != filepath.Join(dir, "src") {
		t.Fatalf("source dir = %q", got)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	manifest, ok, err := loadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if manifest.Root != dir {
		t.Fatalf("root = %q, want %q", manifest.Root, dir)
	}
	// No [check].source: the manifest directory is the source dir.
	if manifest.sourceDir() != dir {
		t.Fatalf("source dir = %q", manifest.sourceDir())
	}
}

func TestLoadManifestRequiresPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\n")
	if _, _, err := loadManifest(dir); err == nil {
		t.Fatalf("expected an error for a manifest without a package name")
	}
}
