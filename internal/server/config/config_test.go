package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8000", cfg.EndpointAddr)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "release", cfg.GinMode)
	assert.True(t, cfg.SeedRooms)
	assert.Empty(t, cfg.AdminEmail)
}

func TestParseFlagsOverridesDefaults(t *testing.T) {
	withArgs(t, "-a", ":9090", "-s", "flag-secret", "-t", "45", "-n", "-e", "root@example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 45*time.Minute, cfg.TokenValidityDuration)
	assert.False(t, cfg.SeedRooms)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)
}

func TestParseFlagsIgnoresUnknown(t *testing.T) {
	withArgs(t, "-a", ":9090", "-zzz", "whatever")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
}

func TestParseJSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"endpoint_addr": ":7070", "token_validity_duration": "2h", "seed_rooms": false}`), 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	assert.False(t, cfg.SeedRooms)
	// untouched fields keep their defaults
	assert.Equal(t, "secretKey", cfg.SecretKey)
}

func TestLoadConfigFlagBeatsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint_addr": ":7070"}`), 0o600))

	withArgs(t, "-c", path, "-a", ":9090")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.EndpointAddr)
}
