// Package dashboard provides the admin landing page with entity counts.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/message"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
	"github.com/webfolio-cms/webfolio/internal/web/navigation"
)

const (
	// Path is the path to the admin dashboard page.
	Path = "/admin"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"
)

// Counts holds the per-entity totals shown on the dashboard.
type Counts struct {
	Sections int64
	Projects int64
	Links    int64
	Messages int64
	Unread   int64
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the dashboard with entity counts.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard").
		AddBreadcrumb("Admin", Path, true)

	var counts Counts

	s.db.Model(&models.Section{}).Count(&counts.Sections)
	s.db.Model(&models.Project{}).Count(&counts.Projects)
	s.db.Model(&models.Link{}).Count(&counts.Links)
	s.db.Model(&models.Message{}).Count(&counts.Messages)

	unread, err := message.CountUnread(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")
	}
	counts.Unread = unread

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Counts":     counts,
	}, handler.BaseLayout)
}
