package configs

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, SourceXLSX, cfg.DatasetSource)
	assert.Equal(t, "quran_data.xlsx", cfg.DatasetPath)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, "require", cfg.DB.SSLMode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATASET_SOURCE", "CSV")
	t.Setenv("DATASET_PATH", "/data/quran.csv")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("DB_HOST", "db.internal")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SourceCSV, cfg.DatasetSource)
	assert.Equal(t, "/data/quran.csv", cfg.DatasetPath)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "db.internal", cfg.DB.Host)
}

func TestValidate(t *testing.T) {
	base := Config{Port: "3000", DatasetSource: SourceXLSX, DatasetPath: "quran_data.xlsx"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid xlsx", mutate: func(c *Config) {}},
		{name: "unknown source", mutate: func(c *Config) { c.DatasetSource = "parquet" }, wantErr: true},
		{name: "missing path", mutate: func(c *Config) { c.DatasetPath = " " }, wantErr: true},
		{name: "postgres without db name", mutate: func(c *Config) { c.DatasetSource = SourcePostgres }, wantErr: true},
		{name: "postgres with db name", mutate: func(c *Config) {
			c.DatasetSource = SourcePostgres
			c.DB.Name = "quran"
		}},
		{name: "negative ttl", mutate: func(c *Config) { c.CacheTTL = -time.Second }, wantErr: true},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimitMax = -1 }, wantErr: true},
		{name: "rate limit off", mutate: func(c *Config) { c.RateLimitMax = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NamesConfigKey(t *testing.T) {
	cfg := Config{Port: "3000", DatasetSource: "parquet", DatasetPath: "q.xlsx"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset_source")
	assert.Contains(t, err.Error(), "parquet")
}
