package config

import "slices"

// Supported gorm engines.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
// For the sqlite engine Name is the database file path.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string

	MaxIdleConns int // 0 keeps the database/sql default
	MaxOpenConns int // 0 means unlimited
}

func (d *DB) validate() error {
	if d.GormEngine == "" {
		d.GormEngine = EngineMySQL
	}

	if !slices.Contains([]string{EngineMySQL, EnginePostgres, EngineSQLite}, d.GormEngine) {
		return ErrUnsupportedGormEngine
	}

	if d.Name == "" {
		return ErrEmptyDBName
	}

	return nil
}
