package config

import "errors"

// Sentinel errors for the profile CRUD surface. Callers distinguish error
// kinds with errors.Is; context such as the profile name is added by wrapping.
var (
	// ErrParse reports a backing file whose contents are not valid YAML.
	ErrParse = errors.New("config: malformed config file")

	// ErrProfileExists reports an add targeting a name already in use.
	ErrProfileExists = errors.New("config: profile already exists")

	// ErrProfileNotFound reports an operation targeting an absent profile.
	ErrProfileNotFound = errors.New("config: profile not found")

	// ErrReadOnly reports a mutating operation against a source that has no
	// persistence capability.
	ErrReadOnly = errors.New("config: source is read-only")
)
