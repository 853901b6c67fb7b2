package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultPort           = "8080"
	defaultGinMode        = "release"
	defaultAllowedOrigin  = "*"
	defaultBackendBaseURL = "https://ecss-hunt-api.onrender.com"
	defaultAPIBaseURL     = "http://localhost:8080"
	defaultLogLevel       = "info"
)

type Config struct {
	env    string
	config *viper.Viper
}

// Load reads config/config.<env>.yaml when it can be found and layers
// environment variables on top. An empty env falls back to $ENV, then "local".
func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		env:    env,
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetEnv() string {
	return c.env
}

func (c *Config) GetPort() string {
	return c.getString("PORT", "server.port", defaultPort)
}

func (c *Config) GetGinMode() string {
	return c.getString("GIN_MODE", "server.gin_mode", defaultGinMode)
}

// GetAllowedOrigins accepts a comma separated env value or a YAML list.
func (c *Config) GetAllowedOrigins() []string {
	if origins := c.config.GetString("CORS_ALLOWED_ORIGINS"); len(origins) > 0 {
		return splitAndTrim(origins)
	}

	if origins := c.config.GetStringSlice("server.allowed_origins"); len(origins) > 0 {
		return origins
	}

	return []string{defaultAllowedOrigin}
}

func (c *Config) GetBackendBaseURL() string {
	return strings.TrimRight(c.getString("BACKEND_BASE_URL", "backend.base_url", defaultBackendBaseURL), "/")
}

// GetFallbackCorpusPath is empty unless an alternative corpus file is configured.
func (c *Config) GetFallbackCorpusPath() string {
	return c.getString("FALLBACK_CORPUS_PATH", "search.fallback_corpus_path", "")
}

func (c *Config) GetAPIBaseURL() string {
	return strings.TrimRight(c.getString("API_BASE_URL", "client.api_base_url", defaultAPIBaseURL), "/")
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "logging.level", defaultLogLevel)
}

func (c *Config) getString(envKey string, fileKey string, defaultValue string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}
	if len(value) == 0 {
		value = defaultValue
	}

	return value
}

func splitAndTrim(value string) []string {
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); len(part) > 0 {
			parts = append(parts, part)
		}
	}

	return parts
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
