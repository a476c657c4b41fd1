package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DSN", "file:test.db")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("DB_DRIVER", "SQLite")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, DateOrderDayFirst, cfg.DateOrder)
	assert.False(t, cfg.MonthFirst())
	assert.Equal(t, int64(50<<20), cfg.MaxActaSize)
	assert.Equal(t, int64(500<<20), cfg.MaxVideoSize)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBDriver: "mysql", DateOrder: DateOrderDayFirst, MaxActaSize: 1, MaxVideoSize: 1}
	require.Error(t, cfg.Validate())

	cfg = &Config{DBDriver: "postgres", DateOrder: "whatever", MaxActaSize: 1, MaxVideoSize: 1}
	require.Error(t, cfg.Validate())

	cfg = &Config{DBDriver: "postgres", DateOrder: DateOrderMonthFirst, MaxActaSize: 1, MaxVideoSize: 1, MetricsPath: "prom"}
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.MonthFirst())
	assert.Equal(t, "/prom", cfg.MetricsPath)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "debug", LogFormat: "json"}
	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg = &Config{LogLevel: "nonsense"}
	assert.Equal(t, logrus.InfoLevel, cfg.NewLogger().GetLevel())
}
