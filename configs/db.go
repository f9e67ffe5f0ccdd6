package configs

// DB selects the store: PostgreSQL when URL is set, SQLite at SQLitePath otherwise.
type DB struct {
	URL           string `env:"DATABASE_URL"`
	SQLitePath    string `env:"DATABASE_PATH" envDefault:"db.sqlite3"`
	MigrationsDir string `env:"DATABASE_MIGRATIONS_DIR" envDefault:"migrations"`
}

func (c DB) IsPostgres() bool {
	return c.URL != ""
}
