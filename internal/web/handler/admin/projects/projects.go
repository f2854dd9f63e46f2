// Package projects provides the admin page for managing projects and their
// image galleries.
package projects

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/project"
	"github.com/webfolio-cms/webfolio/internal/db/controller/section"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
	"github.com/webfolio-cms/webfolio/internal/web/handler/admin/dashboard"
	"github.com/webfolio-cms/webfolio/internal/web/navigation"
)

const (
	// Path is the path to the admin projects page.
	Path = dashboard.Path + "/projects"

	// TemplateName is the name of the projects template.
	TemplateName = "admin/projects"
)

// Service is the admin projects handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin projects handler.
var Handler = Service{}

// Init initializes the admin projects handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the projects table plus the section list for the edit form.
// Image uploads and mutations go through the content API from the page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Projects", "projects").
		AddBreadcrumb("Admin", dashboard.Path, false).
		AddBreadcrumb("Projects", Path, true)

	projs, err := project.List(s.db, project.Filter{SectionID: c.Query("sectionId")})
	if err != nil {
		log.Error().Err(err).Msg("failed to load projects")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav,
			"Error":      "Failed to load projects",
		}, handler.BaseLayout)
	}

	secs, err := section.List(s.db, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sections")
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Projects":   projs,
		"Sections":   secs,
	}, handler.BaseLayout)
}
