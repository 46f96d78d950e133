package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DBConfig holds the connection parameters read from the environment.
// Host, user, password and database name are required; startup is fatal
// without them.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Load reads the connection settings from the environment (.env is loaded
// by main before this runs).
func Load() (*DBConfig, error) {
	cfg := &DBConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = "3306"
	}

	missing := []string{}
	if cfg.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.User == "" {
		missing = append(missing, "DB_USER")
	}
	if cfg.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if cfg.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("incomplete database configuration, missing: %v", missing)
	}
	return cfg, nil
}

// DSN builds the MySQL connection string.
func (c *DBConfig) DSN() string {
	// Dates travel as YYYY-MM-DD strings end to end, so DATE columns are
	// scanned as text rather than time.Time.
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=False",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// InitDB opens the shared database session.
func InitDB() (*gorm.DB, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
