// Package messages provides the admin inbox for contact form messages.
package messages

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/message"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
	"github.com/webfolio-cms/webfolio/internal/web/handler/admin/dashboard"
	"github.com/webfolio-cms/webfolio/internal/web/navigation"
)

const (
	// Path is the path to the admin messages page.
	Path = dashboard.Path + "/messages"

	// TemplateName is the name of the messages template.
	TemplateName = "admin/messages"
)

// Service is the admin messages handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin messages handler.
var Handler = Service{}

// Init initializes the admin messages handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the message inbox, newest first. Read toggles and deletion go
// through the content API from the page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Messages", "messages").
		AddBreadcrumb("Admin", dashboard.Path, false).
		AddBreadcrumb("Messages", Path, true)

	msgs, err := message.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load messages")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav,
			"Error":      "Failed to load messages",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav,
		"Messages":   msgs,
	}, handler.BaseLayout)
}
