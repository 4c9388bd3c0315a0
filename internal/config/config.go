package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/chronicle/internal/core/model"
	"github.com/agenthands/chronicle/internal/i18n"
)

// SourcesConfig gates the two event streams. Both are off by default.
type SourcesConfig struct {
	UseStaticDataset bool `toml:"use_static_dataset"`
	UseLiveQuery     bool `toml:"use_live_query"`
}

type QueryConfig struct {
	Endpoint          string  `toml:"endpoint"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	UserAgent         string  `toml:"user_agent"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type DatasetConfig struct {
	Path     string `toml:"path"`
	Language string `toml:"language"`
}

type ScoringConfig struct {
	Families map[string]int `toml:"families"`
}

type OfficeConfig struct {
	EntityID   string `toml:"entity_id"`
	PropertyID string `toml:"property_id"`
}

type OfficesConfig struct {
	Chancellor OfficeConfig `toml:"chancellor"`
	President  OfficeConfig `toml:"president"`
	GDRHead    OfficeConfig `toml:"gdr_head"`
}

type VersionConfig struct {
	Current        string `toml:"current"`
	LatestURL      string `toml:"latest_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheHours     int    `toml:"cache_hours"`
}

type ServerConfig struct {
	Port     string `toml:"port"`
	JSONLogs bool   `toml:"json_logs"`
}

type ConcurrencyConfig struct {
	Offices int `toml:"offices"`
}

type Config struct {
	Sources     SourcesConfig          `toml:"sources"`
	Query       QueryConfig            `toml:"query"`
	Dataset     DatasetConfig          `toml:"dataset"`
	Scoring     ScoringConfig          `toml:"scoring"`
	Offices     OfficesConfig          `toml:"offices"`
	Labels      map[string]i18n.Labels `toml:"labels"`
	Version     VersionConfig          `toml:"version"`
	Server      ServerConfig           `toml:"server"`
	Concurrency ConcurrencyConfig      `toml:"concurrency"`
}

// Default returns the built-in configuration. Both event streams are off.
func Default() *Config {
	return &Config{
		Query: QueryConfig{
			Endpoint:          "https://query.wikidata.org/sparql",
			TimeoutSeconds:    15,
			UserAgent:         "chronicle/1.0 (https://github.com/agenthands/chronicle)",
			RequestsPerSecond: 2,
			Burst:             3,
		},
		Dataset: DatasetConfig{
			Path:     "resources/GermanChancellorsPresidents.csv",
			Language: "de",
		},
		Offices: OfficesConfig{
			Chancellor: OfficeConfig{EntityID: "Q4970706", PropertyID: "P1308"},
			President:  OfficeConfig{EntityID: "Q25223", PropertyID: "P1308"},
			GDRHead:    OfficeConfig{EntityID: "Q2354929", PropertyID: "P1308"},
		},
		Version: VersionConfig{
			Current:        "1.0.0",
			LatestURL:      "https://api.github.com/repos/agenthands/chronicle/releases/latest",
			TimeoutSeconds: 3,
			CacheHours:     24,
		},
		Server: ServerConfig{
			Port: "8080",
		},
		Concurrency: ConcurrencyConfig{
			Offices: 3,
		},
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides configuration from CHRONICLE_* environment variables and PORT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CHRONICLE_USE_STATIC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid CHRONICLE_USE_STATIC %q: %w", v, err)
		}
		c.Sources.UseStaticDataset = b
	}
	if v := os.Getenv("CHRONICLE_USE_LIVE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid CHRONICLE_USE_LIVE %q: %w", v, err)
		}
		c.Sources.UseLiveQuery = b
	}
	if v := os.Getenv("CHRONICLE_ENDPOINT"); v != "" {
		c.Query.Endpoint = v
	}
	if v := os.Getenv("CHRONICLE_DATASET"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	return nil
}

// QueryTimeout is the per-request timeout for the graph query service.
func (c *Config) QueryTimeout() time.Duration {
	if c.Query.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Query.TimeoutSeconds) * time.Second
}

// OfficeDescriptors returns the three tracked offices in their fixed order,
// labelled from the given catalog entry.
func (c *Config) OfficeDescriptors(labels i18n.Labels) []model.OfficeDescriptor {
	return []model.OfficeDescriptor{
		{Key: model.OfficeChancellor, OfficeEntityID: c.Offices.Chancellor.EntityID, LinkingPropertyID: c.Offices.Chancellor.PropertyID, TranslatedOfficeLabel: labels.Chancellor},
		{Key: model.OfficePresident, OfficeEntityID: c.Offices.President.EntityID, LinkingPropertyID: c.Offices.President.PropertyID, TranslatedOfficeLabel: labels.President},
		{Key: model.OfficeGDRHead, OfficeEntityID: c.Offices.GDRHead.EntityID, LinkingPropertyID: c.Offices.GDRHead.PropertyID, TranslatedOfficeLabel: labels.GDRHead},
	}
}

// Catalog builds the label catalog: built-in languages overlaid with [labels.*].
func (c *Config) Catalog() *i18n.Catalog {
	return i18n.NewCatalog(c.Labels)
}
