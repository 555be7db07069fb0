package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "astro.yaml")
	// No indentation on the top-level keys to avoid YAML parsing errors
	content := `server:
  host: "0.0.0.0"
  port: "9090"
  shutdown_timeout: 5s
store:
  path: "/tmp/astro.db"
archive:
  bucket: "reports-bucket"
  prefix: "natal"
  region: "eu-west-1"
profiles:
  path: "/etc/astro/profiles.ini"
report:
  gender: "female"
  vedic_seed: 99`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/astro.db", cfg.Store.Path)
	assert.True(t, cfg.Archive.Enabled())
	assert.Equal(t, "natal", cfg.Archive.Prefix)
	assert.Equal(t, "eu-west-1", cfg.Archive.Region)
	assert.Equal(t, "/etc/astro/profiles.ini", cfg.Profiles.Path)
	assert.Equal(t, "female", cfg.Report.Gender)
	assert.Equal(t, uint64(99), cfg.Report.VedicSeed)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "astro-atlas.db", cfg.Store.Path)
	assert.False(t, cfg.Archive.Enabled())
	assert.Equal(t, "male", cfg.Report.Gender)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ASTRO_SERVER_PORT", "7000")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	// When
	_, err := LoadConfig(path)

	// Then
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
