package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"addr": ":8080", "read_timeout": "5s", "write_timeout": "10s"},
		"geocoding": {"base_url": "http://nominatim.local", "user_agent": "test/1.0", "timeout": "3s", "cache_enabled": true, "redis_addr": "redis:6379", "cache_ttl": "1h"},
		"routing": {"base_url": "http://osrm.local", "timeout": "4s"},
		"models": {"dir": "/srv/models"},
		"sink": {"kind": "kafka", "kafka_broker_list": "broker:9092", "kafka_topic": "predictions"},
		"dataset": {"seed": 7, "samples": 100, "start_date": "2024-01-01T00:00:00Z", "span_days": 30, "output_format": "json", "output_path": "out.json"}
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)

	assert.Equal(t, "http://nominatim.local", cfg.Geocoding.BaseURL)
	assert.True(t, cfg.Geocoding.CacheEnabled)
	assert.Equal(t, time.Hour, cfg.Geocoding.CacheTTL)

	assert.Equal(t, "http://osrm.local", cfg.Routing.BaseURL)
	assert.Equal(t, "/srv/models", cfg.Models.Dir)

	assert.Equal(t, "kafka", cfg.Sink.Kind)
	assert.Equal(t, "broker:9092", cfg.Sink.KafkaBrokerList)

	assert.Equal(t, int64(7), cfg.Dataset.Seed)
	assert.Equal(t, 100, cfg.Dataset.Samples)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Dataset.StartDate)
	assert.Equal(t, "json", cfg.Dataset.OutputFormat)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
