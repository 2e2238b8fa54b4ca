package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Engine    EngineConfig    `yaml:"engine" mapstructure:"engine"`
	Overpass  OverpassConfig  `yaml:"overpass" mapstructure:"overpass"`
	Satellite SatelliteConfig `yaml:"satellite" mapstructure:"satellite"`
	Regions   RegionsConfig   `yaml:"regions" mapstructure:"regions"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Maps      MapsConfig      `yaml:"maps" mapstructure:"maps"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// EngineConfig configures analysis defaults.
type EngineConfig struct {
	DefaultRadiusKM float64 `yaml:"default_radius_km" mapstructure:"default_radius_km"`
}

// OverpassConfig configures the primary feature source.
type OverpassConfig struct {
	Enabled       bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint      string `yaml:"endpoint" mapstructure:"endpoint"`
	TimeoutSecs   int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxParallel   int    `yaml:"max_parallel" mapstructure:"max_parallel"`
	RatePerMinute int    `yaml:"rate_per_minute" mapstructure:"rate_per_minute"`
}

// SatelliteConfig configures the satellite land-use summary source.
type SatelliteConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// RegionsConfig configures the region lookup table.
type RegionsConfig struct {
	// Path optionally points at a YAML file overriding the built-in
	// region table.
	Path string `yaml:"path" mapstructure:"path"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string      `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string      `yaml:"database_url" mapstructure:"database_url"`
	SQLitePath  string      `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	Pool        *PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// PoolConfig holds optional Postgres pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// MapsConfig configures artifact rendering.
type MapsConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled"`
	OutputDir  string `yaml:"output_dir" mapstructure:"output_dir"`
	Shapefiles bool   `yaml:"shapefiles" mapstructure:"shapefiles"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("engine.default_radius_km", 2.0)
	v.SetDefault("overpass.enabled", true)
	v.SetDefault("overpass.endpoint", "https://overpass-api.de/api/interpreter")
	v.SetDefault("overpass.timeout_secs", 25)
	v.SetDefault("overpass.max_parallel", 2)
	v.SetDefault("overpass.rate_per_minute", 30)
	v.SetDefault("satellite.enabled", true)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", "fra-atlas.db")
	v.SetDefault("maps.enabled", true)
	v.SetDefault("maps.output_dir", "maps")
	v.SetDefault("maps.shapefiles", false)
	v.SetDefault("server.port", 8000)
	v.SetDefault("batch.max_concurrent", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
