package database

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"quranku_backend/internals/configs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BuildDSN renders cfg as a postgres URL with a short statement timeout.
func BuildDSN(cfg configs.DBConfig) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.Name,
	}
	q := url.Values{}
	q.Set("sslmode", sslmode)
	q.Set("application_name", "quranku")
	q.Set("options", "-c statement_timeout=3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectDB(cfg configs.DBConfig) (*gorm.DB, error) {
	log.Printf("🔌 Connecting to PostgreSQL %s:%s/%s ...", cfg.Host, cfg.Port, cfg.Name)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  BuildDSN(cfg),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	TunePool(db)

	log.Println("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Close releases the pool behind db.
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("[WARN] close db: %v", err)
	}
}
