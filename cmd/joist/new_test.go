// Package main provides the entry point for the joist CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateConfig keeps user-level config (manifest.yaml, env file) and
// environment defaults out of test runs.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JOIST_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("JOIST_PROJECT_NAME", "")
}

// runJoist executes the root command with args and returns its output.
func runJoist(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// parseJSON unmarshals command output into a generic map.
func parseJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, out)
	}
	return result
}

func TestNewCommand_FreshDirectory(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	out, err := runJoist(t, "new", "--json", "-p", "demo", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if result["status"] != "ok" {
		t.Errorf("status = %v", result["status"])
	}
	if result["project_name"] != "demo" {
		t.Errorf("project_name = %v", result["project_name"])
	}
	if result["created"] != float64(16) {
		t.Errorf("created = %v, want 16", result["created"])
	}
	if result["failed"] != float64(0) {
		t.Errorf("failed = %v, want 0", result["failed"])
	}

	// Spot-check the scenario from the manifest contract
	setup, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatalf("reading setup.py: %v", err)
	}
	if !strings.Contains(string(setup), "name='demo',") {
		t.Errorf("setup.py = %q", setup)
	}
	if count := strings.Count(string(setup), "demo"); count != 1 {
		t.Errorf("setup.py contains project name %d times, want 1", count)
	}

	reqs, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	if err != nil {
		t.Fatalf("reading requirements.txt: %v", err)
	}
	if string(reqs) != "# Add your project dependencies here\n" {
		t.Errorf("requirements.txt = %q", reqs)
	}

	info, err := os.Stat(filepath.Join(dir, ".github", "workflows", ".gitkeep"))
	if err != nil {
		t.Fatalf("stat .gitkeep: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf(".gitkeep size = %d, want 0", info.Size())
	}

	if _, err := os.Stat(filepath.Join(dir, "src", "demo", "__init__.py")); err != nil {
		t.Errorf("missing src/demo/__init__.py: %v", err)
	}
}

func TestNewCommand_DefaultProjectName(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	out, err := runJoist(t, "new", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if result["project_name"] != "cnnClassifier" {
		t.Errorf("project_name = %v, want default", result["project_name"])
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "cnnClassifier", "__init__.py")); err != nil {
		t.Errorf("missing src/cnnClassifier/__init__.py: %v", err)
	}
}

func TestNewCommand_ProjectNameFromEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("JOIST_PROJECT_NAME", "envProject")
	dir := t.TempDir()

	out, err := runJoist(t, "new", "--json", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if result["project_name"] != "envProject" {
		t.Errorf("project_name = %v, want envProject", result["project_name"])
	}
}

func TestNewCommand_DryRun(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	out, err := runJoist(t, "new", "--json", "-p", "demo", "--dry_run", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if result["status"] != "dry_run" {
		t.Errorf("status = %v", result["status"])
	}
	if result["planned"] != float64(16) {
		t.Errorf("planned = %v, want 16", result["planned"])
	}
	if result["created"] != float64(0) {
		t.Errorf("created = %v, want 0", result["created"])
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading target dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run created %d filesystem entries", len(entries))
	}
}

func TestNewCommand_Rerun(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if _, err := runJoist(t, "new", "--json", "-p", "demo", "--dir", dir); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	before, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatalf("reading setup.py: %v", err)
	}

	out, err := runJoist(t, "new", "--json", "-p", "demo", "--dir", dir)
	if err != nil {
		t.Fatalf("second run failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	// The five templated files are non-empty after the first run and get
	// skipped; the empty placeholder files are rewritten in place.
	if result["exists"] != float64(5) {
		t.Errorf("exists = %v, want 5", result["exists"])
	}
	if result["overwritten"] != float64(0) {
		t.Errorf("overwritten = %v, want 0", result["overwritten"])
	}

	after, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatalf("reading setup.py: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("rerun without --overwrite changed setup.py")
	}
}

func TestNewCommand_RerunHuman(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if _, err := runJoist(t, "new", "-p", "demo", "--dir", dir); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	out, err := runJoist(t, "new", "-p", "demo", "--dir", dir)
	if err != nil {
		t.Fatalf("second run failed: %v\nOutput: %s", err, out)
	}
	if !strings.Contains(out, "already exists and is non-empty") {
		t.Errorf("rerun output should mention existing files:\n%s", out)
	}
}

func TestNewCommand_Overwrite(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	if _, err := runJoist(t, "new", "--json", "-p", "demo", "--dir", dir); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "setup.py"), []byte("user edits\n"), 0o644); err != nil {
		t.Fatalf("seeding setup.py: %v", err)
	}

	out, err := runJoist(t, "new", "--json", "-p", "demo", "--overwrite", "--dir", dir)
	if err != nil {
		t.Fatalf("overwrite run failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if overwritten, ok := result["overwritten"].(float64); !ok || overwritten == 0 {
		t.Errorf("overwritten = %v, want > 0", result["overwritten"])
	}

	setup, err := os.ReadFile(filepath.Join(dir, "setup.py"))
	if err != nil {
		t.Fatalf("reading setup.py: %v", err)
	}
	if !strings.Contains(string(setup), "name='demo',") {
		t.Errorf("setup.py = %q, want template content restored", setup)
	}
}

func TestNewCommand_FailuresKeepExitZero(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	// A file blocking the src directory fails every entry under it.
	if err := os.WriteFile(filepath.Join(dir, "src"), []byte("blocker"), 0o644); err != nil {
		t.Fatalf("seeding blocker: %v", err)
	}

	out, err := runJoist(t, "new", "--json", "-p", "demo", "--dir", dir)
	if err != nil {
		t.Fatalf("per-file failures must not fail the command: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if failed, ok := result["failed"].(float64); !ok || failed == 0 {
		t.Errorf("failed = %v, want > 0", result["failed"])
	}
	if created, ok := result["created"].(float64); !ok || created == 0 {
		t.Errorf("created = %v, want > 0 (run continues past failures)", result["created"])
	}
}

func TestNewCommand_InvalidProjectName(t *testing.T) {
	isolateConfig(t)

	out, err := runJoist(t, "new", "--json", "-p", "a/b", "--dir", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for invalid project name\nOutput: %s", out)
	}

	result := parseJSON(t, out)
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output missing 'error' field: %v", result)
	}
}

func TestNewCommand_CustomManifest(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()

	manifestPath := filepath.Join(t.TempDir(), "team.yaml")
	manifestYAML := "entries:\n" +
		"  - path: README.md\n" +
		"    template: \"# {{name}}\\n\"\n" +
		"    substitute: true\n" +
		"  - path: cmd/{{name}}/main.go\n"
	if err := os.WriteFile(manifestPath, []byte(manifestYAML), 0o600); err != nil {
		t.Fatalf("writing manifest fixture: %v", err)
	}

	out, err := runJoist(t, "new", "--json", "-p", "demo", "--manifest", manifestPath, "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if result["created"] != float64(2) {
		t.Errorf("created = %v, want 2", result["created"])
	}

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("reading README.md: %v", err)
	}
	if string(readme) != "# demo\n" {
		t.Errorf("README.md = %q", readme)
	}
	if _, err := os.Stat(filepath.Join(dir, "cmd", "demo", "main.go")); err != nil {
		t.Errorf("missing cmd/demo/main.go: %v", err)
	}
}

func TestNewCommand_UserManifestOverride(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")
	t.Setenv("JOIST_CONFIG_HOME", configDir)
	t.Setenv("JOIST_PROJECT_NAME", "")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	manifestYAML := "entries:\n  - path: NOTES.md\n"
	if err := os.WriteFile(filepath.Join(configDir, "manifest.yaml"), []byte(manifestYAML), 0o600); err != nil {
		t.Fatalf("writing user manifest: %v", err)
	}

	dir := t.TempDir()
	out, err := runJoist(t, "new", "--json", "-p", "demo", "--dir", dir)
	if err != nil {
		t.Fatalf("command failed: %v\nOutput: %s", err, out)
	}

	result := parseJSON(t, out)
	if result["created"] != float64(1) {
		t.Errorf("created = %v, want 1 (user manifest replaces built-in)", result["created"])
	}
	if _, err := os.Stat(filepath.Join(dir, "NOTES.md")); err != nil {
		t.Errorf("missing NOTES.md: %v", err)
	}
}
