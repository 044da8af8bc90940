package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	// Clear overrides
	t.Setenv("JOIST_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "joist" {
			t.Errorf("Dir() = %q, want path ending in 'joist'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("JOIST_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("JOIST_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "joist") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "joist"))
	}
}

func TestDefaultManifestPath(t *testing.T) {
	t.Setenv("JOIST_CONFIG_HOME", "/custom/path")
	want := filepath.Join("/custom/path", "manifest.yaml")
	if got := DefaultManifestPath(); got != want {
		t.Errorf("DefaultManifestPath() = %q, want %q", got, want)
	}
}
