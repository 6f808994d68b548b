package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	cfgDir := filepath.Join(dir, ".tally")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	reset()
	defer reset()
	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "nouser.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Errorf("theme default = %q", got)
	}
	if GetBool(KeyDebug) {
		t.Error("debug should default to false")
	}
	if got := GetString(KeyCatalogPath); got != "" {
		t.Errorf("catalog path default = %q", got)
	}
}

func TestProjectConfigOverridesUser(t *testing.T) {
	reset()
	defer reset()

	userDir := t.TempDir()
	userPath := writeConfig(t, userDir, "theme: nord\ncatalog:\n  path: /user/catalog.db\n")

	projDir := t.TempDir()
	writeConfig(t, projDir, "theme: dracula\n")

	if err := Initialize(WithWorkingDir(projDir), WithUserConfig(userPath)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "dracula" {
		t.Errorf("theme = %q, want project value dracula", got)
	}
	// User config survives where the project file is silent.
	if got := GetString(KeyCatalogPath); got != "/user/catalog.db" {
		t.Errorf("catalog path = %q", got)
	}
}

func TestProjectConfigDiscoveredInParent(t *testing.T) {
	reset()
	defer reset()

	root := t.TempDir()
	writeConfig(t, root, "theme: gruvbox\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(filepath.Join(root, "nouser.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "gruvbox" {
		t.Errorf("theme = %q, want gruvbox from parent project config", got)
	}
}

func TestApplyOverridesWinOverFiles(t *testing.T) {
	reset()
	defer reset()

	dir := t.TempDir()
	writeConfig(t, dir, "theme: nord\n")
	if err := Initialize(WithWorkingDir(dir), WithUserConfig(filepath.Join(dir, "nouser.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := ApplyOverrides(map[string]any{KeyTheme: "tokyonight"}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Errorf("theme = %q, want override", got)
	}
}
