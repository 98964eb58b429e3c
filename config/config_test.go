package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Editor, cfg.Editor)
	assert.Equal(t, path, cfg.WriteBackPath())
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestWriteBackAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "studio.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.LogLevel = "debug"
	cfg.Convert.Workers = 8
	cfg.Tasks["info"] = map[string]interface{}{"top": 5}
	require.NoError(t, WriteBack(cfg))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, again.Level())
	assert.Equal(t, 8, again.Convert.Workers)
	assert.Equal(t, "data/library.db", again.Library.Path)
	assert.Equal(t, "top: 5\n", string(again.TaskConfig("info")))
	assert.Nil(t, again.TaskConfig("convert"))
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 0.0.0\nlitematic:\n  keep_properties: true\n"), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Litematic.KeepProperties)
	assert.Equal(t, 128, cfg.Editor.SizeX)
	assert.Equal(t, 4, cfg.Convert.Workers)
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.yaml")
	require.NoError(t, os.WriteFile(old, []byte("version: 9.9.9\n"), 0644))
	_, err := Load(old)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("editor: [1, 2\n"), 0644))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}
