// Package messages implements the /api/messages resource group. Creation is
// the public contact form path; everything else serves the admin panel.
package messages

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/message"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

// Path is the base path of the messages resource.
const Path = handler.APIPath + "/messages"

// Service is the messages API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the messages API handler.
var Handler = Service{}

// Init initializes the messages API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Get(Path+"/:id", s.Get)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)
}

type createRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type updateRequest struct {
	IsRead bool `json:"isRead"`
}

// List returns all messages, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	msgs, err := message.List(s.db)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, msgs)
}

// Get returns a single message by id.
func (s *Service) Get(c *fiber.Ctx) error {
	msg, err := message.Get(s.db, c.Params("id"))
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, msg)
}

// Create stores a contact form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := s.validator.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Name, email and message are required")
	}

	msg, err := message.Create(s.db, &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, msg)
}

// Update toggles the read flag. The transition is idempotent; nothing else
// of a message is mutable.
func (s *Service) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	msg, err := message.SetRead(s.db, c.Params("id"), req.IsRead)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, msg)
}

// Delete removes a message.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := message.Delete(s.db, c.Params("id")); err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Deleted(c, "Message deleted")
}
