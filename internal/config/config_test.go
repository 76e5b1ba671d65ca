package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"minaret/internal/browser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envWith(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs(nil, envWith(map[string]string{"XDG_CONFIG_HOME": t.TempDir()}), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, browser.DefaultHomeURL, cfg.HomeURL)
	assert.Equal(t, browser.DefaultSearchEngine, cfg.SearchEngine)
	assert.Equal(t, StartLanding, cfg.Start)
	assert.False(t, cfg.OpenExternal)
	assert.Nil(t, cfg.Bookmarks)
}

func TestParseArgsFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minaret.toml")
	data := `
home = "https://quran.com"
start = "browser"
open_external = true
log_level = "debug"

[[bookmarks]]
title = "Tafsir"
url = "https://quran.com/1?tafsir=1"

[[bookmarks]]
url = "https://www.sunnah.com"
category = "Hadith"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := ParseArgs([]string{"--config", path, "--open-external=false", "--home", "https://sunnah.com"}, envWith(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "https://sunnah.com", cfg.HomeURL)
	assert.Equal(t, StartBrowser, cfg.Start)
	assert.False(t, cfg.OpenExternal, "flag overrides file")
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Bookmarks, 2)
	assert.Equal(t, browser.DefaultCategory, cfg.Bookmarks[0].Category)
	assert.Equal(t, "sunnah.com", cfg.Bookmarks[1].Title)
	assert.Equal(t, "Hadith", cfg.Bookmarks[1].Category)
}

func TestParseArgsMissingExplicitFile(t *testing.T) {
	_, err := ParseArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.toml")}, envWith(nil), io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseArgsEnvConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte(`search_engine = "https://duckduckgo.com/?q="`), 0o644))

	cfg, err := ParseArgs(nil, envWith(map[string]string{"MINARET_CONFIG": path}), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "https://duckduckgo.com/?q=", cfg.SearchEngine)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestParseArgsValidation(t *testing.T) {
	env := envWith(map[string]string{"XDG_CONFIG_HOME": t.TempDir()})

	_, err := ParseArgs([]string{"--start", "settings"}, env, io.Discard)
	assert.ErrorIs(t, err, ErrInvalidStart)

	_, err = ParseArgs([]string{"--home", "quran.com"}, env, io.Discard)
	assert.Error(t, err)

	_, err = ParseArgs([]string{"--bogus"}, env, io.Discard)
	assert.Error(t, err)
}

func TestParseArgsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("home = [unterminated"), 0o644))

	_, err := ParseArgs([]string{"--config", path}, envWith(nil), io.Discard)
	assert.ErrorContains(t, err, "decode config")
}
