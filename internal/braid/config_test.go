package braid

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultsWhenUnsaved(t *testing.T) {
	client, _ := newTestClient(t)

	cfg, err := client.LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.NoFastForward)
	assert.Equal(t, "127.0.0.1:7433", cfg.ServeAddr)
}

func TestConfig_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)

	saved := &Config{
		NoFastForward: true,
		ServeAddr:     "127.0.0.1:9000",
	}
	require.NoError(t, client.SaveConfig(saved))

	loaded, err := client.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestConfig_EmptyServeAddrFallsBack(t *testing.T) {
	mockGit := &MockGitClient{}
	root := t.TempDir()
	mockGit.On("GitRoot").Return(root)
	client := NewClient(mockGit)

	dir := filepath.Join(root, ".git", "braid")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	data, err := json.Marshal(&Config{NoFastForward: true})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644))

	cfg, err := client.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.NoFastForward)
	assert.Equal(t, "127.0.0.1:7433", cfg.ServeAddr)
}

func TestConfig_MalformedFileIsAnError(t *testing.T) {
	mockGit := &MockGitClient{}
	root := t.TempDir()
	mockGit.On("GitRoot").Return(root)
	client := NewClient(mockGit)

	dir := filepath.Join(root, ".git", "braid")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o644))

	_, err := client.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
