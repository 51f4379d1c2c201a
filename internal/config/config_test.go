package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupXDG(t *testing.T) (dataHome, configHome string) {
	t.Helper()
	root := t.TempDir()
	dataHome = filepath.Join(root, "data")
	configHome = filepath.Join(root, "config")
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	return dataHome, configHome
}

func TestPaths(t *testing.T) {
	dataHome, configHome := setupXDG(t)

	assert.Equal(t, filepath.Join(dataHome, "omikuji", "decks"), GetDeckLibraryPath())
	assert.Equal(t, filepath.Join(configHome, "omikuji", "config.toml"), GetConfigFilePath())
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	setupXDG(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDeckName, cfg.DefaultDeck)
	assert.Equal(t, float64(DefaultFontSize), cfg.FontSize)
	assert.FileExists(t, GetConfigFilePath())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	setupXDG(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`font_path = "/fonts/mincho.otf"`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/fonts/mincho.otf", cfg.FontPath)
	assert.Equal(t, DefaultDeckName, cfg.DefaultDeck)
	assert.Equal(t, DefaultPixelRate, cfg.PixelRatio)
}

func TestLoadConfig_Invalid(t *testing.T) {
	setupXDG(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_deck = "), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetDefaultDeck(t *testing.T) {
	setupXDG(t)

	require.NoError(t, SetDefaultDeck("shrine"))
	name, err := GetDefaultDeck()
	require.NoError(t, err)
	assert.Equal(t, "shrine", name)
}

func TestResolveDeckPath(t *testing.T) {
	dataHome, _ := setupXDG(t)
	deckDir := filepath.Join(dataHome, "omikuji", "decks", DefaultDeckName)
	require.NoError(t, os.MkdirAll(deckDir, 0755))

	got, err := ResolveDeckPath("")
	require.NoError(t, err)
	assert.Equal(t, deckDir, got)

	local := filepath.Join(t.TempDir(), "local.csv")
	require.NoError(t, os.WriteFile(local, []byte("id,title\n"), 0644))
	got, err = ResolveDeckPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, got)

	_, err = ResolveDeckPath("missing-deck")
	assert.Error(t, err)
}
