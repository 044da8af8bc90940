// Package config provides the global configuration directory for joist.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the joist configuration directory.
//
// Resolution:
//   - $JOIST_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/joist if set (respects XDG on any platform)
//   - %AppData%/joist on Windows
//   - ~/.config/joist on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("JOIST_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "joist")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "joist")
		}
	}

	// macOS and Linux: ~/.config/joist
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "joist")
}

// DefaultManifestPath returns the user-level manifest override location.
// When this file exists and no --manifest flag is given, it replaces the
// built-in manifest.
func DefaultManifestPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "manifest.yaml")
}
