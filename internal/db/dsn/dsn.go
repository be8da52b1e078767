// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/pim-suite/mycontacts/internal/config"
)

// Create builds the Data Source Name for the configured engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return Postgres(&cfg.DB)
	case config.EngineSQLite:
		return SQLite(&cfg.DB)
	default:
		return MySQL(&cfg.DB)
	}
}

// MySQL builds a go-sql-driver DSN: user:password@tcp(host:port)/name?extras.
func MySQL(db *config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// Postgres builds a key/value DSN for pgx. Extras are appended as given, e.g. "sslmode=disable".
func Postgres(db *config.DB) string {
	parts := []string{
		"host=" + db.Host,
		fmt.Sprintf("port=%d", db.Port),
		"user=" + db.User,
		"password=" + db.Password,
		"dbname=" + db.Name,
	}

	if db.Extras != "" {
		parts = append(parts, db.Extras)
	}

	return strings.Join(parts, " ")
}

// SQLite returns the database file, with extras as query parameters.
func SQLite(db *config.DB) string {
	if db.Extras == "" {
		return db.Name
	}

	return db.Name + "?" + db.Extras
}
