// Package links provides the admin page for managing external links.
package links

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/link"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
	"github.com/webfolio-cms/webfolio/internal/web/handler/admin/dashboard"
	"github.com/webfolio-cms/webfolio/internal/web/navigation"
)

const (
	// Path is the path to the admin links page.
	Path = dashboard.Path + "/links"

	// TemplateName is the name of the links template.
	TemplateName = "admin/links"
)

// Service is the admin links handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin links handler.
var Handler = Service{}

// Init initializes the admin links handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the links management table.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Links", "links").
		AddBreadcrumb("Admin", dashboard.Path, false).
		AddBreadcrumb("Links", Path, true)

	lnks, err := link.List(s.db, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to load links")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav,
			"Error":      "Failed to load links",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Links":      lnks,
	}, handler.BaseLayout)
}
