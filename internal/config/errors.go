package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnsupportedGormEngine error if config db.GormEngine is not mysql, postgres or sqlite.
	ErrUnsupportedGormEngine = errors.New("toml config db.gormEngine is not supported")

	// ErrEmptyDBName error if config db.name is empty.
	ErrEmptyDBName = errors.New("toml config db.name can not be empty")

	// ErrUnsupportedLocale error if config i18n.locale has no translations.
	ErrUnsupportedLocale = errors.New("toml config i18n.locale is not supported")
)
