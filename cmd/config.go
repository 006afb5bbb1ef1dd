package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/balancete/kv"
	"gopkg.in/yaml.v3"
)

// LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderChat   = "chat"
	ProviderNone   = "none"
)

// Config is the application configuration, read from a YAML file.
type Config struct {
	Store struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"store"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	LLM struct {
		Provider       string `yaml:"provider"`
		Model          string `yaml:"model"`
		Endpoint       string `yaml:"endpoint"`
		APIKeyEnv      string `yaml:"api_key_env"`
		AnswerPath     string `yaml:"answer_path"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"llm"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Tracing bool `yaml:"tracing"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	var c Config
	c.setDefaults()
	return &c
}

func (c *Config) setDefaults() {
	if c.Store.Backend == "" {
		c.Store.Backend = kv.BackendDir
	}
	if c.Store.Path == "" {
		switch c.Store.Backend {
		case kv.BackendSQLite:
			c.Store.Path = ".balancete/balancete.db"
		default:
			c.Store.Path = ".balancete"
		}
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderGemini
	}
	if c.LLM.APIKeyEnv == "" {
		switch c.LLM.Provider {
		case ProviderChat:
			c.LLM.APIKeyEnv = "BALANCETE_API_KEY"
		default:
			c.LLM.APIKeyEnv = "GEMINI_API_KEY"
		}
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 60
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case kv.BackendDir, kv.BackendSQLite, kv.BackendMemory:
	default:
		return fmt.Errorf("invalid store.backend '%s': must be 'dir', 'sqlite' or 'memory'", c.Store.Backend)
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderNone:
	case ProviderChat:
		if c.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required for provider '%s'", ProviderChat)
		}
	default:
		return fmt.Errorf("invalid llm.provider '%s': must be 'gemini', 'chat' or 'none'", c.LLM.Provider)
	}
	if c.LLM.TimeoutSeconds < 0 {
		return fmt.Errorf("llm.timeout_seconds must be positive, got %d", c.LLM.TimeoutSeconds)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format '%s': must be 'text' or 'json'", c.Log.Format)
	}
	return nil
}

// APIKey returns the LLM API key from the environment.
func (c *Config) APIKey() string { return os.Getenv(c.LLM.APIKeyEnv) }

// LoadConfig reads the configuration at path. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
		}
	}
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
