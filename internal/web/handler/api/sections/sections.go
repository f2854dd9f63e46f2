// Package sections implements the /api/sections resource group.
package sections

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/section"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

// Path is the base path of the sections resource.
const Path = handler.APIPath + "/sections"

// Service is the sections API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the sections API handler.
var Handler = Service{}

// Init initializes the sections API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Get(Path+"/:id", s.Get)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)
}

type sectionRequest struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// List returns all sections with their projects and images.
func (s *Service) List(c *fiber.Ctx) error {
	secs, err := section.ListWithProjects(s.db, false)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, secs)
}

// Get returns a single section by id.
func (s *Service) Get(c *fiber.Ctx) error {
	sec, err := section.Get(s.db, c.Params("id"))
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, sec)
}

// Create creates a new section.
func (s *Service) Create(c *fiber.Ctx) error {
	var req sectionRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sec := models.Section{IsActive: true}
	if req.ID != nil {
		sec.ID = *req.ID
	}
	if req.Title != nil {
		sec.Title = *req.Title
	}
	if req.Description != nil {
		sec.Description = *req.Description
	}
	if req.Order != nil {
		sec.Order = *req.Order
	}
	if req.IsActive != nil {
		sec.IsActive = *req.IsActive
	}

	created, err := section.Create(s.db, &sec)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Created(c, created)
}

// Update applies a partial update to a section.
func (s *Service) Update(c *fiber.Ctx) error {
	var req sectionRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := section.Update(s.db, c.Params("id"), section.Fields{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, updated)
}

// Delete removes a section and cascades to its projects and images.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := section.Delete(s.db, c.Params("id")); err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Deleted(c, "Section deleted")
}
