// Package settings provides the admin page for editing site settings.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/sitesettings"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
	"github.com/webfolio-cms/webfolio/internal/web/handler/admin/dashboard"
	"github.com/webfolio-cms/webfolio/internal/web/navigation"
)

const (
	// Path is the path to the admin settings page.
	Path = dashboard.Path + "/settings"

	// TemplateName is the name of the settings template.
	TemplateName = "admin/settings"
)

// Service is the admin settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the admin settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the settings form. The row is created with defaults on first
// read; saving and image uploads go through the content API from the page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Site Settings", "settings").
		AddBreadcrumb("Admin", dashboard.Path, false).
		AddBreadcrumb("Settings", Path, true)

	stt, err := sitesettings.Get(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav,
			"Error":      "Failed to load settings",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Settings":   stt,
	}, handler.BaseLayout)
}
