package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"port": 9090, "api_key": "test-key", "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"valid", Config{Port: 8000, MaxUploadMB: 10, RateLimitPerMinute: 60}, false},
		{"port too large", Config{Port: 70000}, true},
		{"negative upload limit", Config{MaxUploadMB: -1}, true},
		{"negative rate limit", Config{RateLimitPerMinute: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		Port:               DefaultPort,
		MaxUploadMB:        DefaultMaxUploadMB,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		APIKey:             "default-key",
	})

	assert.Equal(t, 9090, merged.Port, "explicit value wins")
	assert.Equal(t, DefaultMaxUploadMB, merged.MaxUploadMB)
	assert.Equal(t, DefaultRateLimitPerMinute, merged.RateLimitPerMinute)
	assert.Equal(t, "default-key", merged.APIKey)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := Config{MaxUploadMB: 10}
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes())
}
