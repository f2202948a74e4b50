package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DBDriver   string // "sqlite" or "mysql"
	SQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// optional; empty disables the idempotency middleware
	RedisAddr string
	RedisDB   int

	JWTSecret    string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is a convenience for local runs; absence is not an error
	_ = godotenv.Load()

	c := &Config{
		AppPort:    getenv("APP_PORT", "8080"),
		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		SQLitePath: getenv("SQLITE_PATH", "expman.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "expman"),
		MySQLUser: getenv("MYSQL_USER", "expman"),
		MySQLPass: getenv("MYSQL_PASS", "expman"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		JWTSecret:    getenv("JWT_SECRET", "dev-secret-change-me"),
		AccessTTL:    30 * time.Minute,
		RefreshTTL:   24 * time.Hour,
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("JWT_ACCESS_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.AccessTTL = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("JWT_REFRESH_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RefreshTTL = time.Duration(n) * time.Hour
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// DSN returns the driver-appropriate connection string.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, net.JoinHostPort(c.MySQLHost, c.MySQLPort), c.MySQLDB)
}
