// Package configdir encapsulates all path knowledge for the ~/.aidoc/
// configuration directory. It provides a Dir value object with accessors for
// the config file path plus helpers for locating the user-level .env file.
package configdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the dotfile directory created under the user's home.
const DirName = ".aidoc"

// Dir is a value object that resolves paths within an aidoc config directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use Ensure to create the directory.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Default resolves the standard config directory under the user's home
// (~/.aidoc).
func Default() (Dir, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir{}, fmt.Errorf("configdir: resolve home dir: %w", err)
	}

	return New(filepath.Join(home, DirName)), nil
}

// Root returns the absolute path to the config directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the profile config file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.yaml") }

// Exists reports whether the config directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// Ensure creates the config directory if it is missing, with owner-only
// permissions. It is safe to call multiple times (idempotent).
func Ensure(d Dir) error {
	if err := os.MkdirAll(d.root, 0o700); err != nil {
		return fmt.Errorf("configdir: create config dir: %w", err)
	}

	return nil
}

// DefaultEnvFile returns the path to the user-level .env file (~/.env) that
// the environment-backed config source reads before consulting the process
// environment.
func DefaultEnvFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("configdir: resolve home dir: %w", err)
	}

	return filepath.Join(home, ".env"), nil
}
