package config

import "fmt"

// ProfileManager is the profile CRUD surface shared by Manager and
// ReadOnlyManager. Every mutating operation persists through the underlying
// loader on success, or returns ErrReadOnly when the source cannot save.
type ProfileManager interface {
	GetConfig() (*Document, error)
	Save() error
	AddProfile(name, provider, model, apiKey string, params map[string]any) error
	EditProfile(name string, upd ProfileUpdate) error
	DeleteProfile(name string) error
	SetDefault(name string) error
}

// Manager caches the loaded configuration document in memory and exposes
// profile CRUD operations. The cache is populated on first use and never
// refreshed; the document is owned exclusively by this instance for the
// lifetime of one process invocation.
type Manager struct {
	loader Loader
	doc    *Document
}

// NewManager creates a manager over the given loader.
func NewManager(loader Loader) *Manager {
	return &Manager{loader: loader}
}

// GetConfig returns the cached document, loading it from the source on the
// first call.
func (m *Manager) GetConfig() (*Document, error) {
	if m.doc != nil {
		return m.doc, nil
	}

	doc, err := m.loader.Load()
	if err != nil {
		return nil, err
	}

	m.doc = doc

	return m.doc, nil
}

// Save persists the cached document through the loader, loading first if
// nothing is cached yet. Returns ErrReadOnly when the source cannot save.
func (m *Manager) Save() error {
	if !m.loader.Writable() {
		return ErrReadOnly
	}

	if _, err := m.GetConfig(); err != nil {
		return err
	}

	return m.loader.Save(m.doc)
}

// AddProfile inserts a new profile. The first profile added to a document
// with no default becomes the default. Returns ErrProfileExists if name is
// already taken.
func (m *Manager) AddProfile(name, provider, model, apiKey string, params map[string]any) error {
	doc, err := m.GetConfig()
	if err != nil {
		return err
	}

	if _, ok := doc.Profiles[name]; ok {
		return fmt.Errorf("%w: %q", ErrProfileExists, name)
	}

	if params == nil {
		params = map[string]any{}
	}

	doc.Profiles[name] = Profile{
		Provider: provider,
		Model:    model,
		APIKey:   apiKey,
		Params:   params,
	}

	if doc.DefaultProfile == "" {
		doc.DefaultProfile = name
	}

	return m.Save()
}

// EditProfile merges the update into an existing profile; fields the update
// leaves nil are retained. Returns ErrProfileNotFound if name is absent.
func (m *Manager) EditProfile(name string, upd ProfileUpdate) error {
	doc, err := m.GetConfig()
	if err != nil {
		return err
	}

	p, ok := doc.Profiles[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}

	doc.Profiles[name] = upd.apply(p)

	return m.Save()
}

// DeleteProfile removes a profile. If the removed profile was the default,
// the default is reassigned to an arbitrary remaining profile, or unset when
// none remain. Returns ErrProfileNotFound if name is absent.
func (m *Manager) DeleteProfile(name string) error {
	doc, err := m.GetConfig()
	if err != nil {
		return err
	}

	if _, ok := doc.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}

	delete(doc.Profiles, name)

	if doc.DefaultProfile == name {
		doc.DefaultProfile = ""
		for remaining := range doc.Profiles {
			doc.DefaultProfile = remaining
			break
		}
	}

	return m.Save()
}

// SetDefault marks an existing profile as the default. Returns
// ErrProfileNotFound if name is absent.
func (m *Manager) SetDefault(name string) error {
	doc, err := m.GetConfig()
	if err != nil {
		return err
	}

	if _, ok := doc.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}

	doc.DefaultProfile = name

	return m.Save()
}

// ReadOnlyManager has the same surface as Manager but rejects every mutating
// operation with ErrReadOnly before touching the cached document.
type ReadOnlyManager struct {
	m Manager
}

// NewReadOnlyManager creates a read-only manager over the given loader.
func NewReadOnlyManager(loader Loader) *ReadOnlyManager {
	return &ReadOnlyManager{m: Manager{loader: loader}}
}

// GetConfig behaves identically to Manager.GetConfig.
func (r *ReadOnlyManager) GetConfig() (*Document, error) {
	return r.m.GetConfig()
}

// Save always fails with ErrReadOnly.
func (r *ReadOnlyManager) Save() error { return ErrReadOnly }

// AddProfile always fails with ErrReadOnly.
func (r *ReadOnlyManager) AddProfile(string, string, string, string, map[string]any) error {
	return ErrReadOnly
}

// EditProfile always fails with ErrReadOnly.
func (r *ReadOnlyManager) EditProfile(string, ProfileUpdate) error { return ErrReadOnly }

// DeleteProfile always fails with ErrReadOnly.
func (r *ReadOnlyManager) DeleteProfile(string) error { return ErrReadOnly }

// SetDefault always fails with ErrReadOnly.
func (r *ReadOnlyManager) SetDefault(string) error { return ErrReadOnly }
