package database

// Config holds settings for the embedded SQLite store shared across bots.
type Config struct {
	// Path is the database file location; ":memory:" is accepted for tests.
	Path           string `yaml:"path" envconfig:"DB_PATH"`
	BusyTimeoutMS  int    `yaml:"busy_timeout_ms" envconfig:"DB_BUSY_TIMEOUT_MS"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}
