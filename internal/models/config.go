package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type GeocodingConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	UserAgent    string        `mapstructure:"user_agent"`
	Timeout      time.Duration `mapstructure:"timeout"`
	CacheEnabled bool          `mapstructure:"cache_enabled"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

type RoutingConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ModelConfig struct {
	Dir string `mapstructure:"dir"`
}

// SinkConfig selects where prediction records are written. Kind is one of
// "console", "kafka" or "postgres".
type SinkConfig struct {
	Kind            string `mapstructure:"kind"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`
	PostgresDSN     string `mapstructure:"postgres_dsn"`
}

type CloudStorageConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type DatasetConfig struct {
	Seed         int64              `mapstructure:"seed"`
	Samples      int                `mapstructure:"samples"`
	StartDate    time.Time          `mapstructure:"start_date"`
	SpanDays     int                `mapstructure:"span_days"`
	OutputFormat string             `mapstructure:"output_format"`
	OutputPath   string             `mapstructure:"output_path"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Geocoding GeocodingConfig `mapstructure:"geocoding"`
	Routing   RoutingConfig   `mapstructure:"routing"`
	Models    ModelConfig     `mapstructure:"models"`
	Sink      SinkConfig      `mapstructure:"sink"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		// Flag and env defaults still apply when no config file exists.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
