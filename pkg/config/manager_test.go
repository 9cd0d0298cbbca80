package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileManager(t *testing.T) (*Manager, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	return NewManager(NewFileLoader(path)), path
}

func TestManager_AddProfile_FirstBecomesDefault(t *testing.T) {
	m, path := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))

	doc, err := m.GetConfig()
	require.NoError(t, err)

	assert.Equal(t, "p1", doc.DefaultProfile)
	require.Contains(t, doc.Profiles, "p1")

	p := doc.Profiles["p1"]
	assert.Equal(t, "openai", p.Provider)
	assert.Equal(t, "gpt-4", p.Model)
	assert.Equal(t, "sk-1", p.APIKey)
	assert.NotNil(t, p.Params)
	assert.Empty(t, p.Params)

	// Mutation was persisted; a fresh loader sees the same document.
	reloaded, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, doc, reloaded)
}

func TestManager_AddProfile_KeepsExistingDefault(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))
	require.NoError(t, m.AddProfile("p2", "anthropic", "m2", "sk-2", nil))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "p1", doc.DefaultProfile)
}

func TestManager_AddProfile_Duplicate(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))

	err := m.AddProfile("p1", "anthropic", "m2", "sk-2", nil)
	assert.ErrorIs(t, err, ErrProfileExists)

	// The document is unchanged.
	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "openai", doc.Profiles["p1"].Provider)
	assert.Equal(t, "sk-1", doc.Profiles["p1"].APIKey)
}

func TestManager_AddProfile_WithParams(t *testing.T) {
	m, _ := newFileManager(t)

	params := map[string]any{"temperature": "0.7", "max_tokens": "1024"}
	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", params))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, params, doc.Profiles["p1"].Params)
}

func TestManager_EditProfile_MergesFields(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))

	model := "gpt-4o-mini"
	require.NoError(t, m.EditProfile("p1", ProfileUpdate{Model: &model}))

	doc, err := m.GetConfig()
	require.NoError(t, err)

	p := doc.Profiles["p1"]
	assert.Equal(t, "gpt-4o-mini", p.Model)
	assert.Equal(t, "openai", p.Provider)
	assert.Equal(t, "sk-1", p.APIKey)
}

func TestManager_EditProfile_ReplacesParams(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", map[string]any{"temperature": "0.2"}))
	require.NoError(t, m.EditProfile("p1", ProfileUpdate{Params: map[string]any{"max_tokens": "512"}}))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"max_tokens": "512"}, doc.Profiles["p1"].Params)
}

func TestManager_EditProfile_NotFound(t *testing.T) {
	m, _ := newFileManager(t)

	model := "m1"
	err := m.EditProfile("ghost", ProfileUpdate{Model: &model})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestManager_DeleteProfile_ReassignsDefault(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))
	require.NoError(t, m.AddProfile("p2", "anthropic", "m2", "sk-2", nil))

	require.NoError(t, m.DeleteProfile("p1"))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "p2", doc.DefaultProfile)
	assert.NotContains(t, doc.Profiles, "p1")
}

func TestManager_DeleteProfile_LastUnsetsDefault(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))
	require.NoError(t, m.DeleteProfile("p1"))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Empty(t, doc.DefaultProfile)
	assert.Empty(t, doc.Profiles)
}

func TestManager_DeleteProfile_NonDefaultKeepsDefault(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))
	require.NoError(t, m.AddProfile("p2", "anthropic", "m2", "sk-2", nil))

	require.NoError(t, m.DeleteProfile("p2"))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "p1", doc.DefaultProfile)
}

func TestManager_DeleteProfile_NotFound(t *testing.T) {
	m, _ := newFileManager(t)

	assert.ErrorIs(t, m.DeleteProfile("ghost"), ErrProfileNotFound)
}

func TestManager_SetDefault(t *testing.T) {
	m, _ := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))
	require.NoError(t, m.AddProfile("p2", "anthropic", "m2", "sk-2", nil))

	require.NoError(t, m.SetDefault("p2"))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "p2", doc.DefaultProfile)
}

func TestManager_SetDefault_NotFound(t *testing.T) {
	m, _ := newFileManager(t)

	assert.ErrorIs(t, m.SetDefault("ghost"), ErrProfileNotFound)
}

func TestManager_GetConfig_Caches(t *testing.T) {
	m, path := newFileManager(t)

	require.NoError(t, m.AddProfile("p1", "openai", "gpt-4", "sk-1", nil))

	// Changing the backing file after the first load has no effect on the
	// cached document.
	require.NoError(t, os.Remove(path))

	doc, err := m.GetConfig()
	require.NoError(t, err)
	assert.Contains(t, doc.Profiles, "p1")
}

func TestManager_Save_ReadOnlyLoader(t *testing.T) {
	m := NewManager(NewEnvLoader())

	assert.ErrorIs(t, m.Save(), ErrReadOnly)
}

func TestReadOnlyManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	seed := []byte(`
default_profile: p1
profiles:
  p1:
    provider: openai
    model: gpt-4
    api_key: sk-1
    params: {}
`)
	require.NoError(t, os.WriteFile(path, seed, 0o600))

	r := NewReadOnlyManager(NewFileLoader(path))

	doc, err := r.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "p1", doc.DefaultProfile)

	assert.ErrorIs(t, r.Save(), ErrReadOnly)
	assert.ErrorIs(t, r.AddProfile("p2", "anthropic", "m2", "sk-2", nil), ErrReadOnly)
	assert.ErrorIs(t, r.EditProfile("p1", ProfileUpdate{}), ErrReadOnly)
	assert.ErrorIs(t, r.DeleteProfile("p1"), ErrReadOnly)
	assert.ErrorIs(t, r.SetDefault("p1"), ErrReadOnly)

	// Neither the cached document nor the backing file was touched.
	doc, err = r.GetConfig()
	require.NoError(t, err)
	assert.Contains(t, doc.Profiles, "p1")
	assert.NotContains(t, doc.Profiles, "p2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, seed, data)
}
