package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/joist/internal/manifest"
	"github.com/gorewood/joist/internal/scaffold"
)

// --- Shared types ---

// FileInfo describes one manifest entry after rendering.
type FileInfo struct {
	Path     string `json:"path"     jsonschema:"relative file path"`
	Template bool   `json:"template" jsonschema:"whether the file carries default content"`
}

// FileOutcome describes what happened to one file during a run.
type FileOutcome struct {
	Path     string `json:"path"               jsonschema:"relative file path"`
	Dir      string `json:"dir,omitempty"      jsonschema:"parent directory, when not the target root"`
	Action   string `json:"action"             jsonschema:"created, overwritten, exists, planned, or failed"`
	Template bool   `json:"template"           jsonschema:"whether default content was written"`
	Error    string `json:"error,omitempty"    jsonschema:"failure detail for failed files"`
}

// resolveEntries loads a custom manifest when a path is given, otherwise
// the built-in one.
func resolveEntries(manifestPath string) ([]manifest.Entry, error) {
	if manifestPath == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(manifestPath)
}

// resolveName validates the project name, defaulting when empty.
func resolveName(name string) (string, error) {
	if name == "" {
		name = manifest.DefaultProjectName
	}
	if err := manifest.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

func toFileOutcomes(outcomes []scaffold.Outcome) []FileOutcome {
	result := make([]FileOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		fo := FileOutcome{
			Path:     o.Path,
			Dir:      o.Dir,
			Action:   string(o.Action),
			Template: o.Template,
			Error:    o.Err,
		}
		if o.DirStatus == scaffold.DirFailed && fo.Error == "" {
			fo.Error = o.DirErr
		}
		result = append(result, fo)
	}
	return result
}

// --- Manifest tool ---

// ManifestInput is the input for the manifest tool.
type ManifestInput struct {
	ProjectName string `json:"project_name,omitempty" jsonschema:"project name rendered into paths (default cnnClassifier)"`
	Manifest    string `json:"manifest,omitempty"     jsonschema:"path to a custom manifest YAML file"`
}

// ManifestOutput is the output for the manifest tool.
type ManifestOutput struct {
	ProjectName string     `json:"project_name" jsonschema:"effective project name"`
	Count       int        `json:"count"        jsonschema:"number of manifest entries"`
	Files       []FileInfo `json:"files"        jsonschema:"rendered manifest entries in creation order"`
}

func handleManifest(_ context.Context, _ *mcp.CallToolRequest, input ManifestInput) (*mcp.CallToolResult, ManifestOutput, error) {
	name, err := resolveName(input.ProjectName)
	if err != nil {
		return nil, ManifestOutput{}, err
	}

	entries, err := resolveEntries(input.Manifest)
	if err != nil {
		return nil, ManifestOutput{}, fmt.Errorf("loading manifest: %w", err)
	}

	files := manifest.Render(entries, name)
	out := ManifestOutput{
		ProjectName: name,
		Count:       len(files),
		Files:       make([]FileInfo, 0, len(files)),
	}
	for _, f := range files {
		out.Files = append(out.Files, FileInfo{Path: f.Path, Template: f.Content != ""})
	}
	return nil, out, nil
}

// --- Plan tool ---

// PlanInput is the input for the plan tool.
type PlanInput struct {
	ProjectName string `json:"project_name,omitempty" jsonschema:"project name rendered into paths (default cnnClassifier)"`
	Dir         string `json:"dir,omitempty"          jsonschema:"target directory (default: server working directory)"`
	Overwrite   bool   `json:"overwrite,omitempty"    jsonschema:"plan as if existing non-empty files would be rewritten"`
	Manifest    string `json:"manifest,omitempty"     jsonschema:"path to a custom manifest YAML file"`
}

// PlanOutput is the output for the plan tool.
type PlanOutput struct {
	ProjectName string        `json:"project_name" jsonschema:"effective project name"`
	Planned     int           `json:"planned"      jsonschema:"number of files that would be processed"`
	Files       []FileOutcome `json:"files"        jsonschema:"intended action per file"`
}

func handlePlan(_ context.Context, _ *mcp.CallToolRequest, input PlanInput) (*mcp.CallToolResult, PlanOutput, error) {
	name, err := resolveName(input.ProjectName)
	if err != nil {
		return nil, PlanOutput{}, err
	}

	entries, err := resolveEntries(input.Manifest)
	if err != nil {
		return nil, PlanOutput{}, fmt.Errorf("loading manifest: %w", err)
	}

	result := scaffold.Apply(manifest.Render(entries, name), scaffold.Options{
		Dir:       input.Dir,
		DryRun:    true,
		Overwrite: input.Overwrite,
	})

	return nil, PlanOutput{
		ProjectName: name,
		Planned:     result.Planned,
		Files:       toFileOutcomes(result.Outcomes),
	}, nil
}

// --- Scaffold tool ---

// ScaffoldInput is the input for the scaffold tool.
type ScaffoldInput struct {
	ProjectName string `json:"project_name,omitempty" jsonschema:"project name rendered into paths (default cnnClassifier)"`
	Dir         string `json:"dir,omitempty"          jsonschema:"target directory (default: server working directory)"`
	Overwrite   bool   `json:"overwrite,omitempty"    jsonschema:"rewrite existing non-empty files with default content"`
	Manifest    string `json:"manifest,omitempty"     jsonschema:"path to a custom manifest YAML file"`
}

// ScaffoldOutput is the output for the scaffold tool.
type ScaffoldOutput struct {
	ProjectName string        `json:"project_name" jsonschema:"effective project name"`
	Created     int           `json:"created"      jsonschema:"files created"`
	Overwritten int           `json:"overwritten"  jsonschema:"files rewritten because overwrite was set"`
	Exists      int           `json:"exists"       jsonschema:"files left alone because they exist non-empty"`
	Failed      int           `json:"failed"       jsonschema:"files that could not be written"`
	Files       []FileOutcome `json:"files"        jsonschema:"outcome per file in creation order"`
}

func handleScaffold(_ context.Context, _ *mcp.CallToolRequest, input ScaffoldInput) (*mcp.CallToolResult, ScaffoldOutput, error) {
	name, err := resolveName(input.ProjectName)
	if err != nil {
		return nil, ScaffoldOutput{}, err
	}

	entries, err := resolveEntries(input.Manifest)
	if err != nil {
		return nil, ScaffoldOutput{}, fmt.Errorf("loading manifest: %w", err)
	}

	result := scaffold.Apply(manifest.Render(entries, name), scaffold.Options{
		Dir:       input.Dir,
		Overwrite: input.Overwrite,
	})

	return nil, ScaffoldOutput{
		ProjectName: name,
		Created:     result.Created,
		Overwritten: result.Overwritten,
		Exists:      result.Exists,
		Failed:      result.Failed,
		Files:       toFileOutcomes(result.Outcomes),
	}, nil
}
