// Package home implements the public portfolio page: hero, about, project
// gallery, social links and the contact form.
package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/link"
	"github.com/webfolio-cms/webfolio/internal/db/controller/section"
	"github.com/webfolio-cms/webfolio/internal/db/controller/sitesettings"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

// TemplateName is the name of the public page template.
const TemplateName = "home"

// Service is the public site handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public site handler.
var Handler = Service{}

// Init initializes the public site handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(handler.RootPath, s.Get)
}

// Get renders the public page from active sections, links and the settings
// row. Read failures degrade gracefully: the page renders with empty content
// rather than failing.
func (s *Service) Get(c *fiber.Ctx) error {
	secs, err := section.ListWithProjects(s.db, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sections for public site")
		secs = []models.Section{}
	}

	lnks, err := link.List(s.db, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to load links for public site")
		lnks = []models.Link{}
	}

	stt, err := sitesettings.Get(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings for public site")
		stt = nil
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":    s.cfg.Title,
		"Sections": secs,
		"Links":    lnks,
		"Settings": stt,
	})
}
