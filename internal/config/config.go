package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DateOrderDayFirst   = "day_first"
	DateOrderMonthFirst = "month_first"
)

type Config struct {
	DBDriver        string        `env:"DB_DRIVER" envDefault:"postgres"`
	DBDSN           string        `env:"DB_DSN,required,notEmpty"`
	ServerPort      string        `env:"SERVER_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SessionSecret   string        `env:"SESSION_SECRET,required,notEmpty"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// порядок день/месяц для неоднозначных дат в CSV
	DateOrder string `env:"DATE_ORDER" envDefault:"day_first"`

	UploadsDir   string `env:"UPLOADS_DIR" envDefault:"./uploads"`
	MaxActaSize  int64  `env:"MAX_ACTA_SIZE" envDefault:"52428800"`
	MaxVideoSize int64  `env:"MAX_VIDEO_SIZE" envDefault:"524288000"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"Admin123!"`

	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
}

func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.Wrap(err, "load .env")
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver != DriverPostgres && c.DBDriver != DriverSQLite {
		return errors.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver)
	}
	if c.DateOrder != DateOrderDayFirst && c.DateOrder != DateOrderMonthFirst {
		return errors.Errorf("DATE_ORDER must be %q or %q, got %q", DateOrderDayFirst, DateOrderMonthFirst, c.DateOrder)
	}
	if c.MaxActaSize <= 0 || c.MaxVideoSize <= 0 {
		return errors.New("upload size limits must be positive")
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		c.MetricsPath = "/" + c.MetricsPath
	}
	return nil
}

// MonthFirst возвращает true, если 03/04/2025 читается как 4 марта.
func (c *Config) MonthFirst() bool {
	return c.DateOrder == DateOrderMonthFirst
}

func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warnf("unknown LOG_LEVEL %q, falling back to info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
