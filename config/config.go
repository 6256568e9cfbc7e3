package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application-level configuration
type Config struct {
	// Input
	DataPath string `yaml:"data_path"`

	// Output
	ExportDir string `yaml:"export_dir"`
	ChartDir  string `yaml:"chart_dir"`

	// Charts; an empty assets host means the public go-echarts CDN
	ChartAssetsHost  string `yaml:"chart_assets_host"`
	RenderPNG        bool   `yaml:"render_png"`
	ChromeTimeoutSec int    `yaml:"chrome_timeout_sec"`

	// Database export; empty URL disables it
	DBDriver     string `yaml:"db_driver"`
	DatabaseURL  string `yaml:"database_url"`
	DBMaxRetries int    `yaml:"db_max_retries"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		DataPath:         "data/youtube_trending_videos.csv",
		ExportDir:        "exports",
		ChartDir:         "charts",
		RenderPNG:        true,
		ChromeTimeoutSec: 30,
		DBDriver:         "postgres",
		DBMaxRetries:     3,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// Load reads configuration in three layers: built-in defaults, an optional
// YAML file named by CONFIG_FILE, then environment variables (a .env file in
// the working directory is loaded first if present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.DataPath = getEnv("DATA_PATH", cfg.DataPath)
	cfg.ExportDir = getEnv("EXPORT_DIR", cfg.ExportDir)
	cfg.ChartDir = getEnv("CHART_DIR", cfg.ChartDir)
	cfg.ChartAssetsHost = getEnv("CHART_ASSETS_HOST", cfg.ChartAssetsHost)
	cfg.RenderPNG = getEnvBool("RENDER_PNG", cfg.RenderPNG)
	cfg.ChromeTimeoutSec = getEnvInt("CHROME_TIMEOUT_SEC", cfg.ChromeTimeoutSec)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBMaxRetries = getEnvInt("DB_MAX_RETRIES", cfg.DBMaxRetries)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}
	if c.ChromeTimeoutSec <= 0 {
		return fmt.Errorf("CHROME_TIMEOUT_SEC must be positive, got %d", c.ChromeTimeoutSec)
	}
	return nil
}

// DatabaseEnabled reports whether a database export target is configured
func (c *Config) DatabaseEnabled() bool {
	return c.DatabaseURL != ""
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to decode config file: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
