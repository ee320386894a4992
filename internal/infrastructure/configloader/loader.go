package configloader

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
}

// GeckoTerminalConfig holds GeckoTerminal API specific configurations.
type GeckoTerminalConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// DEXScreenerConfig holds the configuration for the DEX Screener client.
type DEXScreenerConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// TronscanConfig holds the configuration for the Tronscan client.
type TronscanConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// StorageConfig holds the durable key-value storage configuration.
type StorageConfig struct {
	DataDir string `yaml:"dataDir"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Logging       LoggingConfig       `yaml:"logging"`
	GeckoTerminal GeckoTerminalConfig `yaml:"geckoTerminal"`
	DEXScreener   DEXScreenerConfig   `yaml:"dexScreener"`
	Tronscan      TronscanConfig      `yaml:"tronscan"`
	Storage       StorageConfig       `yaml:"storage"`
}

// Load reads the YAML configuration file from the given path and unmarshals
// it, applying defaults for anything not set.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.GeckoTerminal.BaseURL == "" {
		cfg.GeckoTerminal.BaseURL = "https://api.geckoterminal.com/api/v2"
		logrus.Infof("GeckoTerminal.BaseURL not set, defaulting to %s", cfg.GeckoTerminal.BaseURL)
	}
	if cfg.GeckoTerminal.RequestTimeoutMillis == 0 {
		cfg.GeckoTerminal.RequestTimeoutMillis = 10000
	}
	if cfg.DEXScreener.BaseURL == "" {
		cfg.DEXScreener.BaseURL = "https://api.dexscreener.com"
		logrus.Infof("DEXScreener.BaseURL not set, defaulting to %s", cfg.DEXScreener.BaseURL)
	}
	if cfg.DEXScreener.RequestTimeoutMillis == 0 {
		cfg.DEXScreener.RequestTimeoutMillis = 10000
	}
	if cfg.Tronscan.BaseURL == "" {
		cfg.Tronscan.BaseURL = "https://apilist.tronscanapi.com"
		logrus.Infof("Tronscan.BaseURL not set, defaulting to %s", cfg.Tronscan.BaseURL)
	}
	if cfg.Tronscan.RequestTimeoutMillis == 0 {
		cfg.Tronscan.RequestTimeoutMillis = 10000
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
}
