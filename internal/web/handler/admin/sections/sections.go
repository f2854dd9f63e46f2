// Package sections provides the admin page for managing sections.
package sections

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/section"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
	"github.com/webfolio-cms/webfolio/internal/web/handler/admin/dashboard"
	"github.com/webfolio-cms/webfolio/internal/web/navigation"
)

const (
	// Path is the path to the admin sections page.
	Path = dashboard.Path + "/sections"

	// TemplateName is the name of the sections template.
	TemplateName = "admin/sections"
)

// Service is the admin sections handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin sections handler.
var Handler = Service{}

// Init initializes the admin sections handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the sections management table. Mutations go through the
// content API from the page itself.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Sections", "sections").
		AddBreadcrumb("Admin", dashboard.Path, false).
		AddBreadcrumb("Sections", Path, true)

	secs, err := section.List(s.db, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sections")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav,
			"Error":      "Failed to load sections",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Sections":   secs,
	}, handler.BaseLayout)
}
