package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "h2h")
	t.Setenv("PAGE_SIZE", "30")
	t.Setenv("DEFAULT_MILES", "7.5")
	t.Setenv("OTP_TTL", "2m")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg := config.Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 30, cfg.Feed.PageSize)
	assert.Equal(t, 100, cfg.Feed.MaxPageSize)
	assert.Equal(t, 7.5, cfg.Feed.DefaultMiles)
	assert.Equal(t, 2*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, int64(5), cfg.OTP.MaxAttempts)
	assert.False(t, cfg.OTP.ExposeInMessage)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "app:secret@tcp(db:3307)/h2h?parseTime=true&loc=UTC&charset=utf8mb4&multiStatements=true", cfg.GetDSN())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PAGE_SIZE", "not-a-number")
	t.Setenv("DEFAULT_MILES", "")

	cfg := config.Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 20, cfg.Feed.PageSize)
	assert.Equal(t, 5.0, cfg.Feed.DefaultMiles)
	assert.True(t, cfg.OTP.ExposeInMessage)
}
