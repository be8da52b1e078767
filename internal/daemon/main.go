// Package daemon wires the database and the web service together.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/config"
	"github.com/pim-suite/mycontacts/internal/db/database"
	"github.com/pim-suite/mycontacts/internal/web"
)

const closeTimeout = 5 * time.Second

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves http until a shutdown signal arrives, then closes the database.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	errStart := d.webService.Start(addr)

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	return errors.Join(errStart, database.Close(ctx, d.db))
}

// New opens and migrates the database, seeds the default contact types and creates the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}

	if err = database.Seed(db); err != nil {
		return nil, err
	}

	webService, err := web.New(cfg, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create web service: %w", err)
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}
