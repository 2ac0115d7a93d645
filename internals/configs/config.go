package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Dataset sources
const (
	SourceXLSX     = "xlsx"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Port          string        `yaml:"port" validate:"required"`
	DatasetSource string        `yaml:"dataset_source" validate:"oneof=xlsx csv postgres"`
	DatasetPath   string        `yaml:"dataset_path"`
	DatasetSheet  string        `yaml:"dataset_sheet,omitempty"`
	CacheTTL      time.Duration `yaml:"cache_ttl" validate:"gte=0"`
	CORSOrigins   string        `yaml:"cors_origins"`
	RateLimitMax  int           `yaml:"rate_limit_max" validate:"gte=0"`
	DB            DBConfig      `yaml:"db"`
}

type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"-"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}
}

// SetDefaults registers default values and env bindings on v.
// Nested keys map to env names with "_" (db.host -> DB_HOST).
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("dataset_source", SourceXLSX)
	v.SetDefault("dataset_path", "quran_data.xlsx")
	v.SetDefault("dataset_sheet", "")
	v.SetDefault("cache_ttl", "0s")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("rate_limit_max", 100)

	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", "")
	v.SetDefault("db.sslmode", "require")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the effective configuration out of v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:          v.GetString("port"),
		DatasetSource: strings.ToLower(strings.TrimSpace(v.GetString("dataset_source"))),
		DatasetPath:   v.GetString("dataset_path"),
		DatasetSheet:  v.GetString("dataset_sheet"),
		CacheTTL:      v.GetDuration("cache_ttl"),
		CORSOrigins:   v.GetString("cors_origins"),
		RateLimitMax:  v.GetInt("rate_limit_max"),
		DB: DBConfig{
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			Name:     v.GetString("db.name"),
			SSLMode:  v.GetString("db.sslmode"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

// newValidator reports fields by their config key instead of the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("invalid %s %q: must satisfy %s=%s", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param())
		}
		return err
	}

	switch c.DatasetSource {
	case SourceXLSX, SourceCSV:
		if strings.TrimSpace(c.DatasetPath) == "" {
			return fmt.Errorf("dataset_path is required for %s source", c.DatasetSource)
		}
	case SourcePostgres:
		if c.DB.Name == "" {
			return fmt.Errorf("db.name is required for postgres source")
		}
	}
	return nil
}
