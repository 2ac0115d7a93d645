package database

import (
	"net/url"
	"testing"

	"quranku_backend/internals/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(configs.DBConfig{
		User:     "quran",
		Password: "p@ss:word",
		Host:     "db.internal",
		Port:     "6543",
		Name:     "quranku",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:6543", u.Host)
	assert.Equal(t, "/quranku", u.Path)
	assert.Equal(t, "quran", u.User.Username())
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss:word", pw)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
	assert.Equal(t, "-c statement_timeout=3000", u.Query().Get("options"))
}

func TestBuildDSN_SSLMode(t *testing.T) {
	dsn := BuildDSN(configs.DBConfig{Host: "localhost", Port: "5432", Name: "q", SSLMode: "disable"})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
}

func TestGormLogger_LogModeCopies(t *testing.T) {
	base := NewGormLogger().(*GormLogger)
	silent := base.LogMode(gormLogger.Silent).(*GormLogger)

	assert.Equal(t, gormLogger.Warn, base.LogLevel)
	assert.Equal(t, gormLogger.Silent, silent.LogLevel)
}
