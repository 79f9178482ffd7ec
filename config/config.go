package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Feed    FeedConfig    `yaml:"feed"`
	Ranking RankingConfig `yaml:"ranking"`
	View    ViewConfig    `yaml:"view"`
	Map     MapConfig     `yaml:"map"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatasetConfig points at the static HDB carpark reference dataset.
type DatasetConfig struct {
	CSVPath string `yaml:"csv_path"`
}

// FeedConfig describes the live carpark-availability feed.
type FeedConfig struct {
	URL             string        `yaml:"url"`
	Enabled         bool          `yaml:"enabled"`
	IntervalSeconds int           `yaml:"interval_seconds"`
	Interval        time.Duration `yaml:"-"` // Ignored by YAML parser
	TimeoutSeconds  int           `yaml:"timeout_seconds"`
	HTTPProxy       string        `yaml:"http_proxy"`
}

// RankingConfig holds nearest-carpark ranking defaults.
type RankingConfig struct {
	DefaultLimit int `yaml:"default_limit"`
}

// ViewConfig holds table-view defaults.
type ViewConfig struct {
	PageSize int `yaml:"page_size"`
}

// MapConfig holds the fallback map center used when no observer
// location is known.
type MapConfig struct {
	CenterLat float64 `yaml:"center_lat"`
	CenterLon float64 `yaml:"center_lon"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Dataset.CSVPath == "" {
		cfg.Dataset.CSVPath = "./data/HDBCarparkInformation.csv"
	}

	if cfg.Feed.URL == "" {
		cfg.Feed.URL = "https://api.data.gov.sg/v1/transport/carpark-availability"
	}
	if cfg.Feed.IntervalSeconds <= 0 {
		cfg.Feed.IntervalSeconds = 60
	}
	cfg.Feed.Interval = time.Duration(cfg.Feed.IntervalSeconds) * time.Second
	if cfg.Feed.TimeoutSeconds <= 0 {
		cfg.Feed.TimeoutSeconds = 30
	}

	if cfg.Ranking.DefaultLimit <= 0 {
		cfg.Ranking.DefaultLimit = 5
	}
	if cfg.View.PageSize <= 0 {
		cfg.View.PageSize = 10
	}

	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLon == 0 {
		// Default center of Singapore.
		cfg.Map.CenterLat = 1.3521
		cfg.Map.CenterLon = 103.8198
	}

	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 60
	}

	return &cfg, nil
}
