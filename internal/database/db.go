package database

import (
	"context"
	"time"

	"refresh-tracker/internal/config"
	"refresh-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB — общее подключение процесса, выставляется в Init.
var DB *gorm.DB

const (
	maxAttempts  = 10
	attemptDelay = 2 * time.Second
)

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.Errorf("unsupported db driver %q", driver)
	}
}

// Connect открывает БД, повторяя попытки: postgres в docker-compose
// поднимается позже приложения.
func Connect(ctx context.Context, driver, dsn string, log *logrus.Logger) (*gorm.DB, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := 1; i <= maxAttempts; i++ {
		log.WithField("driver", driver).Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(dial, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			log.Info("connected to DB successfully")
			return db, nil
		}

		log.WithError(err).Warn("failed to connect to DB")
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "connect to db")
		case <-time.After(attemptDelay):
		}
	}
	return nil, errors.Wrapf(err, "connect to db after %d attempts", maxAttempts)
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Equipment{},
		&models.RAMUnit{},
		&models.SSDUnit{},
		&models.ComponentHistory{},
		&models.Repotentiation{},
		&models.DiskDestruction{},
		&models.ConformityRecord{},
	)
	return errors.Wrap(err, "migrate")
}

// SeedAdmin создаёт администратора из конфига, если в системе нет ни одного.
func SeedAdmin(db *gorm.DB, username, password string, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "check admin user")
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash default admin password")
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return errors.Wrap(err, "create default admin")
	}

	log.WithField("username", username).Info("created default admin user")
	return nil
}

func Init(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	db, err := Connect(ctx, cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword, log); err != nil {
		return nil, err
	}
	DB = db
	return db, nil
}
