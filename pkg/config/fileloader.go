package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads and writes the configuration document at a fixed YAML
// file path. A missing file is not an error: Load returns a fresh empty
// document, and the first Save creates the file and its parent directory.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader backed by the YAML file at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Path returns the backing file path.
func (l *FileLoader) Path() string { return l.path }

// Load parses the backing file into a document. Absent top-level keys are
// filled with defaults, and api_key values written as ${VAR} placeholders
// are replaced with the current value of the named environment variable
// (empty string if unset).
func (l *FileLoader) Load() (*Document, error) {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", l.path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, l.path, err)
	}

	doc.normalize()
	doc.resolveAPIKeys()

	return &doc, nil
}

// Save serializes the document to the backing file, creating the parent
// directory if needed, then restricts the file to owner read/write only.
// Filesystem failures surface to the caller and are not retried.
func (l *FileLoader) Save(doc *Document) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: marshal config: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", l.path, err)
	}

	// WriteFile permissions only apply on create; tighten files that existed
	// before aidoc did.
	if err := os.Chmod(l.path, 0o600); err != nil {
		return fmt.Errorf("config: chmod %s: %w", l.path, err)
	}

	return nil
}

// Writable reports that the file source supports saving.
func (l *FileLoader) Writable() bool { return true }

// resolveAPIKeys substitutes ${VAR}-shaped api_key values with the
// environment. The substitution is one-directional: once resolved in memory,
// the placeholder form is never written back.
func (d *Document) resolveAPIKeys() {
	for name, p := range d.Profiles {
		v, ok := envPlaceholder(p.APIKey)
		if !ok {
			continue
		}

		p.APIKey = os.Getenv(v)
		d.Profiles[name] = p
	}
}

// envPlaceholder reports whether s has the exact shape ${VAR} and returns the
// variable name.
func envPlaceholder(s string) (string, bool) {
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return "", false
	}

	return s[2 : len(s)-1], true
}
