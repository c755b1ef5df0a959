// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for mdchat configuration.
	DefaultConfigDir = ".mdchat"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gpt-4o"
	// DefaultSchemasDir is the default data-model catalog directory.
	DefaultSchemasDir = "schemas"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	LLM     LLMConfig     `yaml:"llm,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Auth    AuthConfig    `yaml:"auth,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
	Schemas SchemasConfig `yaml:"schemas,omitempty"`
}

// LLMConfig holds configuration for the LLM provider.
// The same model and base URL are shared by every operation.
type LLMConfig struct {
	Model string `yaml:"model,omitempty"`
	// BaseURL selects an alternate OpenAI-compatible endpoint (e.g. Ollama).
	BaseURL string `yaml:"base_url,omitempty"`
	APIKey  string `yaml:"api_key,omitempty"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr         string        `yaml:"addr,omitempty"`
	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
	IdleTimeout  time.Duration `yaml:"idle_timeout,omitempty"`
}

// AuthConfig holds bearer token settings for the HTTP endpoint.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret,omitempty"`
	Issuer    string        `yaml:"issuer,omitempty"`
	TokenTTL  time.Duration `yaml:"token_ttl,omitempty"`
}

// LogConfig holds logging configuration.
// When File is empty, logs go to stderr.
type LogConfig struct {
	Level      string `yaml:"level,omitempty"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// SchemasConfig points at the data-model catalog.
type SchemasConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Model: DefaultModel,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
		Auth: AuthConfig{
			Issuer:   "mdchat",
			TokenTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
		Schemas: SchemasConfig{
			Dir: DefaultSchemasDir,
		},
	}
}

// Load loads configuration from the .mdchat directory in the given path.
// A missing config file is not an error; defaults and environment
// overrides are used instead.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Schemas.Dir != "" && !filepath.IsAbs(cfg.Schemas.Dir) {
		cfg.Schemas.Dir = filepath.Join(basePath, cfg.Schemas.Dir)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
// A set variable always wins over the config file.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if url := os.Getenv("OLLAMA_URL"); url != "" {
		c.LLM.BaseURL = url
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.Auth.JWTSecret = secret
	}
	if addr := os.Getenv("MDCHAT_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// ResolveAPIKey returns the per-request key when given, otherwise the
// configured key.
func (c *Config) ResolveAPIKey(override string) string {
	if key := strings.TrimSpace(override); key != "" {
		return key
	}
	return c.LLM.APIKey
}

// ConfigDir returns the path to the .mdchat config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
