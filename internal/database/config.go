package database

import (
	"fmt"
	"net/url"
)

// busyTimeoutMS is how long a connection waits on a locked database file.
const busyTimeoutMS = 5000

// Config holds database configuration
type Config struct {
	// Path is the sqlite file holding the application's stored entries.
	Path string
}

// NewConfig creates a database configuration for the sqlite file at path.
func NewConfig(path string) *Config {
	return &Config{Path: path}
}

// params are the go-sqlite3 connection options shared by gorm and the migrator.
func (c *Config) params() string {
	q := url.Values{}
	q.Set("_busy_timeout", fmt.Sprint(busyTimeoutMS))
	q.Set("_journal_mode", "WAL")
	return q.Encode()
}

// DSN returns the go-sqlite3 connection string.
func (c *Config) DSN() string {
	return "file:" + c.Path + "?" + c.params()
}

// MigrateURL returns the golang-migrate sqlite3 database URL.
func (c *Config) MigrateURL() string {
	return "sqlite3://" + c.Path + "?" + c.params()
}
