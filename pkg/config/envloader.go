package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consumed by the env-backed source.
const (
	EnvProvider = "AIDOC_PROVIDER"
	EnvModel    = "AIDOC_MODEL"
	EnvAPIKey   = "AIDOC_API_KEY" //nolint:gosec // variable name, not a credential
)

// EnvProfileName is the name of the single profile an EnvLoader synthesizes.
const EnvProfileName = "env-profile"

// EnvLoader synthesizes a read-only document from environment variables. If
// a dotenv path is configured, it is loaded into the process environment
// first (existing variables win); a missing dotenv file is silently ignored
// so that .env files remain optional.
type EnvLoader struct {
	dotenvPath string
}

// NewEnvLoader creates a loader that reads the process environment only.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{}
}

// NewEnvLoaderFromFile creates a loader that loads the dotenv file at path
// before reading the environment.
func NewEnvLoaderFromFile(path string) *EnvLoader {
	return &EnvLoader{dotenvPath: path}
}

// Load builds a document with exactly one profile, named after
// EnvProfileName and set as the default. Missing variables yield empty
// fields rather than an error; the document is always well-formed.
func (l *EnvLoader) Load() (*Document, error) {
	if l.dotenvPath != "" {
		if err := godotenv.Load(l.dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load env file %s: %w", l.dotenvPath, err)
		}
	}

	doc := NewDocument()
	doc.DefaultProfile = EnvProfileName
	doc.Profiles[EnvProfileName] = Profile{
		Provider: os.Getenv(EnvProvider),
		Model:    os.Getenv(EnvModel),
		APIKey:   os.Getenv(EnvAPIKey),
		Params:   map[string]any{},
	}

	return doc, nil
}

// Save always fails: the environment source has no persistence capability.
func (l *EnvLoader) Save(*Document) error { return ErrReadOnly }

// Writable reports that the env source does not support saving.
func (l *EnvLoader) Writable() bool { return false }
