// Package manifest defines the file layout a scaffolded project receives.
//
// A manifest is an ordered list of entries. Each entry names a relative
// path, optionally with template content. Paths and substituting templates
// may contain the {{name}} token, replaced by the project name at render
// time. Order defines creation order.
package manifest

import (
	"fmt"
	"strings"
)

// NameToken is the placeholder replaced by the project name in entry
// paths and in templates that opt into substitution.
const NameToken = "{{name}}"

// DefaultProjectName is used when no project name is supplied.
const DefaultProjectName = "cnnClassifier"

// Entry describes one file the scaffolder ensures exists.
type Entry struct {
	// Path is a slash-separated relative path. It may contain NameToken.
	Path string `yaml:"path" json:"path"`

	// Template is the default file content. Empty means the file is
	// created empty.
	Template string `yaml:"template,omitempty" json:"template,omitempty"`

	// Substitute marks templates that receive the project name in place
	// of NameToken. Only the packaging descriptor uses this.
	Substitute bool `yaml:"substitute,omitempty" json:"substitute,omitempty"`
}

// File is a rendered entry: a concrete relative path and its content.
type File struct {
	Path    string
	Content string
}

// HasTemplate reports whether the entry carries non-empty default content.
func (e Entry) HasTemplate() bool {
	return e.Template != ""
}

const setupTemplate = `from setuptools import setup, find_packages

setup(
    name='{{name}}',
    version='0.1',
    packages=find_packages(),
    install_requires=[],
)
`

// Default returns the built-in manifest: a standard ML project skeleton
// with a namespaced source package, pipeline configs, a placeholder
// notebook, and a template HTML page.
func Default() []Entry {
	return []Entry{
		{Path: ".github/workflows/.gitkeep"},
		{Path: "src/{{name}}/__init__.py"},
		{Path: "src/{{name}}/components/__init__.py"},
		{Path: "src/{{name}}/utils/__init__.py"},
		{Path: "src/{{name}}/config/__init__.py"},
		{Path: "src/{{name}}/config/configuration.py"},
		{Path: "src/{{name}}/pipeline/__init__.py"},
		{Path: "src/{{name}}/entity/__init__.py"},
		{Path: "src/{{name}}/constants/__init__.py"},
		{Path: "config/config.yaml", Template: "# YAML configuration for your project\n"},
		{Path: "dvc.yaml", Template: "# DVC configuration file\n"},
		{Path: "params.yaml", Template: "# Parameters for the project\n"},
		{Path: "requirements.txt", Template: "# Add your project dependencies here\n"},
		{Path: "setup.py", Template: setupTemplate, Substitute: true},
		{Path: "research/trials.ipynb"},
		{Path: "templates/index.html"},
	}
}

// Render resolves entries against a project name, expanding NameToken in
// paths and in substituting templates. Non-substituting templates are
// used verbatim; entries without templates render empty content.
func Render(entries []Entry, name string) []File {
	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		content := entry.Template
		if entry.Substitute {
			content = strings.ReplaceAll(content, NameToken, name)
		}
		files = append(files, File{
			Path:    strings.ReplaceAll(entry.Path, NameToken, name),
			Content: content,
		})
	}
	return files
}

// ValidateName checks that a project name is usable as a path segment.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("project name %q must not contain path separators", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("project name %q is not a valid directory name", name)
	}
	return nil
}
