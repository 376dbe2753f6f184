package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// BackendOpenAI selects the hosted chat-completions API.
	BackendOpenAI = "openai"
	// BackendOllama selects a locally reachable inference endpoint.
	BackendOllama = "ollama"
)

// Config represents the application configuration. Loaded once at startup
// and passed to components; nothing reads it as ambient global state.
type Config struct {
	Backend         string        `json:"backend"`
	OpenAIAPIKey    string        `json:"openai_api_key,omitempty"`
	OpenAIModel     string        `json:"openai_model,omitempty"`
	OllamaURL       string        `json:"ollama_url,omitempty"`
	OllamaModel     string        `json:"ollama_model,omitempty"`
	SchemasLocation string        `json:"schemas_location"`
	TemplatesDir    string        `json:"templates_dir"`
	ChromePath      string        `json:"chrome_path,omitempty"`
	Defaults        DefaultConfig `json:"defaults"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	Template string `json:"template"`
}

// Load reads configuration from file with environment variable overrides.
// A .env file in the working directory is honored if present.
func Load(configPath string) (cfg Config, err error) {
	_ = godotenv.Load()

	path := configPath
	if path == "" {
		path, err = defaultConfigPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Errorf("config file not found: %s (run 'resume-adapter init' to create)", path)
			return cfg, err
		}
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config file: %s", path)
		return cfg, err
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.OpenAIAPIKey = apiKey
	}
	if ollamaURL := os.Getenv("OLLAMA_URL"); ollamaURL != "" {
		cfg.OllamaURL = ollamaURL
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks that all required configuration is present.
func (c *Config) Validate() (err error) {
	if c.Backend == "" {
		c.Backend = BackendOpenAI
	}

	if c.Backend != BackendOpenAI && c.Backend != BackendOllama {
		err = errors.Errorf("unknown backend %q (must be %q or %q)", c.Backend, BackendOpenAI, BackendOllama)
		return err
	}

	if c.SchemasLocation == "" {
		err = errors.New("schemas_location is required in config")
		return err
	}

	_, err = os.Stat(c.SchemasLocation)
	if os.IsNotExist(err) {
		err = errors.Errorf("schema file not found: %s", c.SchemasLocation)
		return err
	}

	if c.TemplatesDir == "" {
		err = errors.New("templates_dir is required in config")
		return err
	}

	if c.Defaults.Template == "" {
		c.Defaults.Template = "default"
	}

	return err
}

// ValidateBackend checks that the effective backend can run. Credential
// absence for the hosted backend is fatal at startup, before any pipeline
// stage runs.
func (c *Config) ValidateBackend(backend string) (err error) {
	switch backend {
	case BackendOpenAI:
		if c.OpenAIAPIKey == "" {
			err = errors.New("openai_api_key is required (set in config or OPENAI_API_KEY env var)")
			return err
		}
	case BackendOllama:
		// Local endpoint, no credential.
	default:
		err = errors.Errorf("unknown backend %q (must be %q or %q)", backend, BackendOpenAI, BackendOllama)
		return err
	}
	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = defaultConfigPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Config{
		Backend:         BackendOpenAI,
		OpenAIAPIKey:    "sk-...",
		OllamaURL:       "http://localhost:11434",
		SchemasLocation: filepath.Join(dir, "schemas.yaml"),
		TemplatesDir:    filepath.Join(dir, "templates"),
		Defaults: DefaultConfig{
			Template: "default",
		},
	}

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}

func defaultConfigPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".resume-adapter", "config.json")
	return path, err
}
