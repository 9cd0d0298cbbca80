package config

import (
	"fmt"

	"github.com/aidoctool/aidoc/pkg/configdir"
)

// Loader abstracts where configuration comes from. Load always succeeds
// structurally for a well-formed backing medium; Save is only meaningful when
// Writable reports true and returns ErrReadOnly otherwise. Callers that need
// persistence should branch on Writable rather than probing Save.
type Loader interface {
	Load() (*Document, error)
	Save(doc *Document) error
	Writable() bool
}

// Source selects the backing medium for configuration.
type Source string

const (
	// SourceYAML loads from the YAML config file and supports saving.
	SourceYAML Source = "yaml"
	// SourceEnv synthesizes a read-only document from environment variables.
	SourceEnv Source = "env"
)

// NewLoader returns the loader for the given source. The YAML source reads
// and writes dir's config file; the env source reads the user-level .env
// file (if any) and the process environment.
func NewLoader(source Source, dir configdir.Dir) (Loader, error) {
	switch source {
	case SourceYAML:
		return NewFileLoader(dir.ConfigPath()), nil
	case SourceEnv:
		dotenv, err := configdir.DefaultEnvFile()
		if err != nil {
			// No resolvable home dir; fall back to the process environment only.
			return NewEnvLoader(), nil
		}

		return NewEnvLoaderFromFile(dotenv), nil
	default:
		return nil, fmt.Errorf("config: unknown source %q", source)
	}
}
