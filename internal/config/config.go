package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env            string
	ServiceName    string
	ServiceVersion string

	// GoogleAPIKey is the opaque credential for the Generative Language API.
	// An empty value is not a startup error; requests fail with a typed
	// CREDENTIAL_MISSING outcome instead.
	GoogleAPIKey string

	// DatabaseURL enables the optional suggestion history when set.
	DatabaseURL string

	// AuthJWTSecret enables bearer-token auth on the API when set.
	AuthJWTSecret string

	OtelExporterOTLPEndpoint string
	OtelExporterOTLPHeaders  string

	Port string

	Gemini GeminiConfig
}

type GeminiConfig struct {
	BaseURL string `yaml:"base_url"`
	// Priorities overrides the built-in model preference list.
	Priorities []string `yaml:"priorities"`
	// RequestTimeoutSeconds bounds each remote call.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
	// CatalogTTLSeconds controls how long a fetched model catalog is reused.
	// Zero keeps it for the whole session.
	CatalogTTLSeconds int `yaml:"catalog_ttl_seconds"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                      os.Getenv("ENV"),
		ServiceName:              os.Getenv("SERVICE_NAME"),
		ServiceVersion:           os.Getenv("SERVICE_VERSION"),
		GoogleAPIKey:             os.Getenv("GOOGLE_API_KEY"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		AuthJWTSecret:            os.Getenv("AUTH_JWT_SECRET"),
		OtelExporterOTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelExporterOTLPHeaders:  os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"),
		Port:                     os.Getenv("PORT"),
	}

	// Load from YAML file if available
	if err := cfg.LoadFromYAML("config.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load YAML config: %w", err)
	}

	// Set defaults
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "kondate"
	}
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = "1.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.SetGeminiDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) LoadFromYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File not found is not an error
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlConfig struct {
		Gemini GeminiConfig `yaml:"gemini"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlConfig.Gemini.BaseURL != "" {
		c.Gemini.BaseURL = yamlConfig.Gemini.BaseURL
	}
	if len(yamlConfig.Gemini.Priorities) > 0 {
		c.Gemini.Priorities = yamlConfig.Gemini.Priorities
	}
	if yamlConfig.Gemini.RequestTimeoutSeconds > 0 {
		c.Gemini.RequestTimeoutSeconds = yamlConfig.Gemini.RequestTimeoutSeconds
	}
	if yamlConfig.Gemini.CatalogTTLSeconds > 0 {
		c.Gemini.CatalogTTLSeconds = yamlConfig.Gemini.CatalogTTLSeconds
	}

	return nil
}

func (c *Config) SetGeminiDefaults() {
	if c.Gemini.RequestTimeoutSeconds == 0 {
		c.Gemini.RequestTimeoutSeconds = 120
	}
	if c.Gemini.CatalogTTLSeconds == 0 {
		c.Gemini.CatalogTTLSeconds = 300
	}
}

// HasCredential reports whether an API credential was supplied.
func (c *Config) HasCredential() bool {
	return c.GoogleAPIKey != ""
}

func (c *Config) validate() error {
	if c.Gemini.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("gemini request_timeout_seconds must not be negative")
	}
	if c.Gemini.CatalogTTLSeconds < 0 {
		return fmt.Errorf("gemini catalog_ttl_seconds must not be negative")
	}
	return nil
}
