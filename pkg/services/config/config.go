package config

import (
	"fmt"
	"strings"

	"github.com/de-tools/roi-atlas/pkg/services/roi"
	"github.com/spf13/viper"
)

const (
	BackendDuckDB = "duckdb"
	BackendS3     = "s3"
	BackendMemory = "memory"

	envPrefix = "ROI"
)

type Config struct {
	Namespace   string            `mapstructure:"namespace"`
	LogLevel    string            `mapstructure:"log_level"`
	PresetsPath string            `mapstructure:"presets_path"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Calculation CalculationConfig `mapstructure:"calculation"`
	Server      ServerConfig      `mapstructure:"server"`
}

type StorageConfig struct {
	Backend       string `mapstructure:"backend"`
	DuckDBPath    string `mapstructure:"duckdb_path"`
	DuckDBThreads int    `mapstructure:"duckdb_threads"`
	S3Bucket      string `mapstructure:"s3_bucket"`
	S3Prefix      string `mapstructure:"s3_prefix"`
	S3Region      string `mapstructure:"s3_region"`
}

type CalculationConfig struct {
	EmployerCostMultiplier float64 `mapstructure:"employer_cost_multiplier"`
	InputTokenShare        float64 `mapstructure:"input_token_share"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (c CalculationConfig) Params() roi.Params {
	return roi.Params{
		EmployerCostMultiplier: c.EmployerCostMultiplier,
		InputTokenShare:        c.InputTokenShare,
	}
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("namespace", "roi-report-store")
	v.SetDefault("log_level", "info")
	v.SetDefault("presets_path", "")
	v.SetDefault("storage.backend", BackendDuckDB)
	v.SetDefault("storage.duckdb_path", "roi-atlas.db")
	v.SetDefault("storage.duckdb_threads", 4)
	v.SetDefault("storage.s3_bucket", "")
	v.SetDefault("storage.s3_prefix", "roi-atlas")
	v.SetDefault("storage.s3_region", "")
	v.SetDefault("calculation.employer_cost_multiplier", roi.DefaultEmployerCostMultiplier)
	v.SetDefault("calculation.input_token_share", roi.DefaultInputTokenShare)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}

// Load reads the config file at path (optional) on top of defaults. ROI_* environment
// variables override both, e.g. ROI_STORAGE_BACKEND=memory.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendDuckDB:
		if c.Storage.DuckDBPath == "" {
			return fmt.Errorf("storage.duckdb_path is required for the duckdb backend")
		}
		if c.Storage.DuckDBThreads < 1 {
			return fmt.Errorf("storage.duckdb_threads must be at least 1, got %d", c.Storage.DuckDBThreads)
		}
	case BackendS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("storage.s3_bucket is required for the s3 backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}
