package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	assert := require.New(t)

	cfg, err := Load("test")
	assert.NoError(err)

	assert.Equal("test", cfg.GetEnv())
	assert.Equal("8089", cfg.GetPort())
	assert.Equal("test", cfg.GetGinMode())
	assert.Equal("http://127.0.0.1:5999", cfg.GetBackendBaseURL())
	assert.Equal("http://127.0.0.1:8089", cfg.GetAPIBaseURL())
	assert.Equal([]string{"http://localhost:3000"}, cfg.GetAllowedOrigins())
	assert.Equal("debug", cfg.GetLogLevel())
	assert.Empty(cfg.GetFallbackCorpusPath())
}

func TestLoadUsesEnvFromEnvironment(t *testing.T) {
	assert := require.New(t)
	t.Setenv("ENV", "test")

	cfg, err := Load("")
	assert.NoError(err)
	assert.Equal("test", cfg.GetEnv())
	assert.Equal("8089", cfg.GetPort())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	assert := require.New(t)
	t.Setenv("BACKEND_BASE_URL", "http://backend.internal:5000/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("FALLBACK_CORPUS_PATH", "/etc/ecssnav/corpus.yaml")

	cfg, err := Load("test")
	assert.NoError(err)

	assert.Equal("http://backend.internal:5000", cfg.GetBackendBaseURL())
	assert.Equal([]string{"https://a.example", "https://b.example"}, cfg.GetAllowedOrigins())
	assert.Equal("/etc/ecssnav/corpus.yaml", cfg.GetFallbackCorpusPath())
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	assert := require.New(t)

	cfg, err := Load("does-not-exist")
	assert.NoError(err)

	assert.Equal(defaultPort, cfg.GetPort())
	assert.Equal(defaultGinMode, cfg.GetGinMode())
	assert.Equal(defaultBackendBaseURL, cfg.GetBackendBaseURL())
	assert.Equal([]string{defaultAllowedOrigin}, cfg.GetAllowedOrigins())
	assert.Equal(defaultLogLevel, cfg.GetLogLevel())
}
