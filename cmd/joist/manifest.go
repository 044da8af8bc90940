// Package main provides the entry point for the joist CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/joist/internal/manifest"
	"github.com/gorewood/joist/internal/output"
)

// manifestFlags holds the command-line flags for the manifest command.
type manifestFlags struct {
	projectName  string
	manifestPath string
}

// manifestEntry is the JSON shape of one listed entry.
type manifestEntry struct {
	Path       string `json:"path"`
	Template   bool   `json:"template"`
	Substitute bool   `json:"substitute"`
}

// newManifestCmd creates the manifest command.
func newManifestCmd() *cobra.Command {
	flags := &manifestFlags{}

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Show the effective manifest",
		Long: `Show the effective manifest: every file the scaffolder ensures exists,
in creation order, rendered for the given project name.

Examples:
  joist manifest                    # Built-in layout with the default name
  joist manifest -p textSummarizer  # Rendered for a project name
  joist manifest --manifest x.yaml  # Inspect a custom manifest file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.projectName, "project_name", "p", "", "Project name (default \""+manifest.DefaultProjectName+"\")")
	cmd.Flags().StringVar(&flags.manifestPath, "manifest", "", "Path to a custom manifest YAML file")

	return cmd
}

// runManifest executes the manifest command.
func runManifest(cmd *cobra.Command, flags *manifestFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

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

	files := manifest.Render(entries, name)

	if printer.IsJSON() {
		listed := make([]manifestEntry, 0, len(files))
		for i, file := range files {
			listed = append(listed, manifestEntry{
				Path:       file.Path,
				Template:   file.Content != "",
				Substitute: entries[i].Substitute,
			})
		}
		return printer.WriteJSON(map[string]any{
			"project_name": name,
			"count":        len(listed),
			"entries":      listed,
		})
	}

	rows := make([][]string, 0, len(files))
	for i, file := range files {
		content := "empty"
		switch {
		case entries[i].Substitute:
			content = "template + name"
		case file.Content != "":
			content = "template"
		}
		rows = append(rows, []string{file.Path, content})
	}
	printer.Table([]string{"PATH", "CONTENT"}, rows)

	return nil
}
