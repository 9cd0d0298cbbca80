// Package config implements profile-based configuration for aidoc. A
// configuration document maps profile names to provider/model/API-key tuples
// and records which profile is the default. Documents come from a pluggable
// Loader (YAML file or environment variables) and are mutated through a
// Manager, which persists every change back through the loader.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Profile is a named set of provider/model/API-key values used to configure
// an AI service call. Params holds open-ended provider-specific settings.
type Profile struct {
	Provider string         `yaml:"provider"`
	Model    string         `yaml:"model"`
	APIKey   string         `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Params   map[string]any `yaml:"params"`
}

// Document is the top-level configuration document. An empty DefaultProfile
// means no default is set.
type Document struct {
	DefaultProfile string             `yaml:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// NewDocument returns an empty document with no default profile.
func NewDocument() *Document {
	return &Document{Profiles: map[string]Profile{}}
}

// normalize fills the zero values a YAML parse can leave behind so that the
// document invariants (non-nil maps, all profile fields present) hold.
func (d *Document) normalize() {
	if d.Profiles == nil {
		d.Profiles = map[string]Profile{}
	}

	for name, p := range d.Profiles {
		if p.Params == nil {
			p.Params = map[string]any{}
			d.Profiles[name] = p
		}
	}
}

// maskedAPIKey replaces real API keys in redacted output.
const maskedAPIKey = "sk-***"

// Redacted returns a deep copy of the document with every non-empty api_key
// replaced by a mask. Empty keys stay empty so the output still shows which
// profiles are missing one.
func (d *Document) Redacted() *Document {
	out := &Document{
		DefaultProfile: d.DefaultProfile,
		Profiles:       make(map[string]Profile, len(d.Profiles)),
	}

	for name, p := range d.Profiles {
		if p.APIKey != "" {
			p.APIKey = maskedAPIKey
		}

		params := make(map[string]any, len(p.Params))
		for k, v := range p.Params {
			params[k] = v
		}
		p.Params = params

		out.Profiles[name] = p
	}

	return out
}

// Dump renders the document as YAML for human display.
func (d *Document) Dump() (string, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("config: render config: %w", err)
	}

	return string(data), nil
}

// ProfileUpdate carries a partial profile edit. Nil fields are left
// untouched; a non-nil Params replaces the profile's params wholesale.
type ProfileUpdate struct {
	Provider *string
	Model    *string
	APIKey   *string
	Params   map[string]any
}

// apply merges the update into p and returns the result.
func (u ProfileUpdate) apply(p Profile) Profile {
	if u.Provider != nil {
		p.Provider = *u.Provider
	}
	if u.Model != nil {
		p.Model = *u.Model
	}
	if u.APIKey != nil {
		p.APIKey = *u.APIKey
	}
	if u.Params != nil {
		p.Params = u.Params
	}

	return p
}
