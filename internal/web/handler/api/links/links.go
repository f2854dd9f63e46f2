// Package links implements the /api/links resource group.
package links

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/link"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

// Path is the base path of the links resource.
const Path = handler.APIPath + "/links"

// Service is the links API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the links API handler.
var Handler = Service{}

// Init initializes the links API handler.
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

type linkRequest struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// List returns all links in display order.
func (s *Service) List(c *fiber.Ctx) error {
	lnks, err := link.List(s.db, false)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, lnks)
}

// Get returns a single link by id.
func (s *Service) Get(c *fiber.Ctx) error {
	lnk, err := link.Get(s.db, c.Params("id"))
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, lnk)
}

// Create creates a new link.
func (s *Service) Create(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	lnk := models.Link{IsActive: true}
	if req.Title != nil {
		lnk.Title = *req.Title
	}
	if req.URL != nil {
		lnk.URL = *req.URL
	}
	if req.Icon != nil {
		lnk.Icon = *req.Icon
	}
	if req.Order != nil {
		lnk.Order = *req.Order
	}
	if req.IsActive != nil {
		lnk.IsActive = *req.IsActive
	}

	created, err := link.Create(s.db, &lnk)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Created(c, created)
}

// Update applies a partial update to a link.
func (s *Service) Update(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := link.Update(s.db, c.Params("id"), link.Fields{
		Title:    req.Title,
		URL:      req.URL,
		Icon:     req.Icon,
		Order:    req.Order,
		IsActive: req.IsActive,
	})
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, updated)
}

// Delete removes a link.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := link.Delete(s.db, c.Params("id")); err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Deleted(c, "Link deleted")
}
