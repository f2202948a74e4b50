package db

import (
	"fmt"
	"time"

	"expman-backend/internal/domain/record"
	"expman-backend/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured backend. driver is "sqlite" (file path in
// dsn) or "mysql" (full DSN).
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return OpenWithDialector(sqlite.Open(dsn))
	case "mysql":
		return OpenWithDialector(mysql.Open(dsn))
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}
}

// OpenWithDialector exists so tests can inject a mocked connection.
func OpenWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&record.Employee{},
		&record.Transaction{},
		&record.Project{},
		&record.Customer{},
		&record.Asset{},
		&user.User{},
	)
}
