// Package main provides the entry point for the joist CLI.
package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/joist/internal/config"
	"github.com/gorewood/joist/internal/manifest"
	"github.com/gorewood/joist/internal/output"
	"github.com/gorewood/joist/internal/scaffold"
)

// newFlags holds the command-line flags for the new command.
type newFlags struct {
	projectName  string
	dryRun       bool
	overwrite    bool
	manifestPath string
	dir          string
}

// newReport is the JSON shape of a scaffolding run.
type newReport struct {
	Status      string             `json:"status"` // "ok" or "dry_run"
	ProjectName string             `json:"project_name"`
	Dir         string             `json:"dir"`
	Overwrite   bool               `json:"overwrite"`
	Created     int                `json:"created"`
	Overwritten int                `json:"overwritten"`
	Exists      int                `json:"exists"`
	Planned     int                `json:"planned"`
	Failed      int                `json:"failed"`
	Files       []scaffold.Outcome `json:"files"`
}

// newStyleSet holds lipgloss styles for new output.
type newStyleSet struct {
	heading lipgloss.Style
	pass    lipgloss.Style
	skip    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// newStyles returns a TTY-aware style set.
func newStyles(isTTY bool) newStyleSet {
	if !isTTY {
		return newStyleSet{}
	}
	return newStyleSet{
		heading: lipgloss.NewStyle().Bold(true),
		pass:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "10", Dark: "10"}),
		skip:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "8", Dark: "7"}),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "12", Dark: "12"}),
	}
}

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Materialize the project skeleton",
		Long: `Materialize the project skeleton in the target directory.

Every manifest entry gets its parent directories created and its file
written with default content (template or empty). The command is
idempotent: existing non-empty files are left alone unless --overwrite
is set, and a failing entry never aborts the rest of the run.

The project name resolves from --project_name, then JOIST_PROJECT_NAME
(loadable from .env files), then the built-in default. A user manifest
at ` + "`<config dir>/manifest.yaml`" + ` replaces the built-in layout when
present; --manifest points at an explicit manifest file.

Examples:
  joist new -p textSummarizer       # Scaffold into the working directory
  joist new --dry_run               # Show what would be done
  joist new --overwrite             # Reset files to template content
  joist new --manifest team.yaml    # Use a custom layout`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.projectName, "project_name", "p", "", "Project name (default \""+manifest.DefaultProjectName+"\")")
	cmd.Flags().BoolVar(&flags.dryRun, "dry_run", false, "Report intended actions without touching the filesystem")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Rewrite existing non-empty files with default content")
	cmd.Flags().StringVar(&flags.manifestPath, "manifest", "", "Path to a custom manifest YAML file")
	cmd.Flags().StringVar(&flags.dir, "dir", "", "Target directory (default: working directory)")

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, flags *newFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
	styles := newStyles(printer.IsTTY())

	name := resolveProjectName(flags.projectName)
	if err := manifest.ValidateName(name); err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	entries, err := resolveManifest(flags.manifestPath)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	if !printer.IsJSON() {
		printHeading(printer, styles, name, flags)
	}

	opts := scaffold.Options{
		Dir:       flags.dir,
		DryRun:    flags.dryRun,
		Overwrite: flags.overwrite,
	}
	if !printer.IsJSON() {
		opts.Observe = func(o scaffold.Outcome) {
			printOutcome(printer, styles, o)
		}
	}

	result := scaffold.Apply(manifest.Render(entries, name), opts)

	if printer.IsJSON() {
		return printer.WriteJSON(buildReport(name, flags, result))
	}

	printSummary(printer, styles, result)

	// Per-file failures are reported in the summary; the exit status
	// stays zero so reruns in provisioning scripts don't break.
	return nil
}

// resolveProjectName applies the flag > environment > default chain.
func resolveProjectName(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("JOIST_PROJECT_NAME"); env != "" {
		return env
	}
	return manifest.DefaultProjectName
}

// resolveManifest picks the manifest source: explicit flag, user-level
// override, or the built-in layout.
func resolveManifest(flagPath string) ([]manifest.Entry, error) {
	if flagPath != "" {
		return manifest.Load(flagPath)
	}
	if userPath := config.DefaultManifestPath(); userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return manifest.Load(userPath)
		}
	}
	return manifest.Default(), nil
}

// buildReport assembles the JSON report for one run.
func buildReport(name string, flags *newFlags, result scaffold.Result) newReport {
	status := "ok"
	if flags.dryRun {
		status = "dry_run"
	}
	dir := flags.dir
	if dir == "" {
		dir = "."
	}
	return newReport{
		Status:      status,
		ProjectName: name,
		Dir:         dir,
		Overwrite:   flags.overwrite,
		Created:     result.Created,
		Overwritten: result.Overwritten,
		Exists:      result.Exists,
		Planned:     result.Planned,
		Failed:      result.Failed,
		Files:       result.Outcomes,
	}
}
