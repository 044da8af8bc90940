package manifest

import (
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileFormat is the YAML shape of a manifest file:
//
//	entries:
//	  - path: src/{{name}}/__init__.py
//	  - path: setup.py
//	    template: |
//	      ...
//	    substitute: true
type fileFormat struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads a manifest file and validates its entries.
func Load(filePath string) ([]Entry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", filePath, err)
	}

	var parsed fileFormat
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", filePath, err)
	}

	if len(parsed.Entries) == 0 {
		return nil, fmt.Errorf("manifest %s has no entries", filePath)
	}

	if err := Validate(parsed.Entries); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filePath, err)
	}

	return parsed.Entries, nil
}

// Validate checks that every entry path stays inside the target
// directory: relative, slash-separated, no traversal.
func Validate(entries []Entry) error {
	for i, entry := range entries {
		if err := validatePath(entry.Path); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return nil
}

func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("path must not be empty")
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("path %q must use forward slashes", p)
	}
	if path.IsAbs(p) {
		return fmt.Errorf("path %q must be relative", p)
	}
	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("path %q escapes the target directory", p)
	}
	if strings.HasSuffix(p, "/") {
		return fmt.Errorf("path %q must name a file, not a directory", p)
	}
	return nil
}
