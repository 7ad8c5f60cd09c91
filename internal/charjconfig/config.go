package charjconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Project is the content of a charj.json project file.
type Project struct {
	// Sources are file paths or filepath.Match patterns, relative to the
	// directory of the project file.
	Sources     []string `json:"sources"`
	LogLevel    string   `json:"logLevel,omitempty"`
	Concurrency int      `json:"concurrency,omitempty"`
}

func ReadConfigFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var project Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("unmarshal project file: %w", err)
	}

	if project.Concurrency < 0 {
		return nil, fmt.Errorf("project file: concurrency must not be negative")
	}

	return &project, nil
}

func SaveConfigFile(path string, project *Project) error {
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project file: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("save project file: %w", err)
	}

	return nil
}

// Files expands Sources against dir. Patterns keep their order; paths
// matched by more than one pattern are listed once. A plain path that does
// not exist is kept so the caller can report it.
func (p *Project) Files(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0, len(p.Sources))

	for _, pattern := range p.Sources {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(dir, pattern)
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand source pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 && !hasMeta(pattern) {
			matches = []string{pattern}
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	return files, nil
}

func hasMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[':
			return true
		}
	}

	return false
}
