// Package web assembles the Fiber application: public site, content API and
// admin panel.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	fiberlogger "github.com/webfolio-cms/webfolio/internal/logger/adapter/fiber"
	"github.com/webfolio-cms/webfolio/internal/upload"
	admindashboard "github.com/webfolio-cms/webfolio/internal/web/handler/admin/dashboard"
	adminlinks "github.com/webfolio-cms/webfolio/internal/web/handler/admin/links"
	adminmessages "github.com/webfolio-cms/webfolio/internal/web/handler/admin/messages"
	adminprojects "github.com/webfolio-cms/webfolio/internal/web/handler/admin/projects"
	adminsections "github.com/webfolio-cms/webfolio/internal/web/handler/admin/sections"
	adminsettings "github.com/webfolio-cms/webfolio/internal/web/handler/admin/settings"
	apilinks "github.com/webfolio-cms/webfolio/internal/web/handler/api/links"
	apimessages "github.com/webfolio-cms/webfolio/internal/web/handler/api/messages"
	apiprojects "github.com/webfolio-cms/webfolio/internal/web/handler/api/projects"
	apisections "github.com/webfolio-cms/webfolio/internal/web/handler/api/sections"
	apisettings "github.com/webfolio-cms/webfolio/internal/web/handler/api/settings"
	apiuploads "github.com/webfolio-cms/webfolio/internal/web/handler/api/uploads"
	"github.com/webfolio-cms/webfolio/internal/web/handler/home"
	"github.com/webfolio-cms/webfolio/internal/web/handler/login"
	"github.com/webfolio-cms/webfolio/internal/web/handler/logout"
	authmw "github.com/webfolio-cms/webfolio/internal/web/middleware/auth"
)

// CheckAlivePath is the liveness endpoint used by load balancers.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	go s.WaitShutdown()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, uploader upload.Uploader) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "Webfolio",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// local backend uploads are served from disk
	if cfg.Upload.Backend != config.UploadBackendCloudinary {
		dir := cfg.Upload.LocalDir
		if dir == "" {
			dir = "./public"
		}

		app.Static("/uploads", dir+"/uploads")
	}

	// session based admin route guard
	app.Use(authmw.Middleware)

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})

	// init handlers (they register their own routes)
	if err := login.Handler.Init(app, cfg, db); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}
	logout.Handler.Init(app, cfg)

	apisections.Handler.Init(app, cfg, db)
	apiprojects.Handler.Init(app, cfg, db)
	apilinks.Handler.Init(app, cfg, db)
	apimessages.Handler.Init(app, cfg, db)
	apisettings.Handler.Init(app, cfg, db)
	apiuploads.Handler.Init(app, cfg, uploader)

	admindashboard.Handler.Init(app, cfg, db)
	adminsections.Handler.Init(app, cfg, db)
	adminprojects.Handler.Init(app, cfg, db)
	adminlinks.Handler.Init(app, cfg, db)
	adminmessages.Handler.Init(app, cfg, db)
	adminsettings.Handler.Init(app, cfg, db)

	home.Handler.Init(app, cfg, db)

	return service
}
