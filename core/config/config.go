package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Jira Jira
	OTel OTelConfig
	Env  string
	Port string
}

// Jira holds the credential triple and the per-site tuning knobs for the
// upstream REST API. Immutable after Load.
type Jira struct {
	ServerURL string
	Email     string
	APIToken  string

	// AcceptanceCriteriaField is the custom field id holding acceptance
	// criteria text. Opaque and site-specific, hence configurable.
	AcceptanceCriteriaField string

	// MaxSearchResults caps JQL search responses.
	MaxSearchResults int
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// Load loads configuration from environment variables. In development it
// first loads a local .env file so the Jira credential triple can live
// outside the shell environment.
func Load() (Config, error) {
	if getEnv("EXTRACTOR_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("EXTRACTOR_ENV", "development"),
		Port: getEnv("PORT", "8000"),
		Jira: Jira{
			ServerURL:               normalizeServerURL(getEnv("JIRA_SERVER", "")),
			Email:                   getEnv("JIRA_EMAIL", ""),
			APIToken:                getEnv("JIRA_API_TOKEN", ""),
			AcceptanceCriteriaField: getEnv("JIRA_ACCEPTANCE_CRITERIA_FIELD", "customfield_10001"),
			MaxSearchResults:        getEnvInt("JIRA_MAX_SEARCH_RESULTS", 50),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "jira-extractor"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
	}

	if cfg.Jira.ServerURL == "" || cfg.Jira.Email == "" || cfg.Jira.APIToken == "" {
		return Config{}, fmt.Errorf("JIRA_SERVER, JIRA_EMAIL and JIRA_API_TOKEN are required")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// normalizeServerURL prefixes https:// when the site is given as a bare
// host like mycompany.atlassian.net.
func normalizeServerURL(server string) string {
	if server == "" {
		return ""
	}
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		return "https://" + server
	}
	return server
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
