// Package daemon wires the database, session store, upload backend and web
// service together.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	sessionmemory "github.com/gofiber/storage/memory"
	sessionmysql "github.com/gofiber/storage/mysql"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/dsn"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/logger"
	"github.com/webfolio-cms/webfolio/internal/upload"
	"github.com/webfolio-cms/webfolio/internal/web"
	"github.com/webfolio-cms/webfolio/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	db := openDatabase(cfg)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Section{},
		&models.Project{},
		&models.Image{},
		&models.Link{},
		&models.Message{},
		&models.SiteSettings{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	session.Init(sessionStorage(cfg))

	uploader := upload.New(cfg)

	return &Daemon{
		webService: *web.New(cfg, db, uploader),
		cfg:        cfg,
	}
}

// openDatabase opens the configured engine: embedded SQLite or MySQL.
func openDatabase(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DB.Engine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		path := cfg.DB.Path
		if path == "" {
			path = "./webfolio.db"
		}

		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	return db
}

// sessionStorage follows the database engine: MySQL-backed sessions in
// production, in-memory sessions for the embedded engine.
func sessionStorage(cfg *config.Config) storage.Storage {
	if cfg.DB.Engine == config.EngineMySQL {
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	}

	return sessionmemory.New()
}
