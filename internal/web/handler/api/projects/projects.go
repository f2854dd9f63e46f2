// Package projects implements the /api/projects resource group.
package projects

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/project"
	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

// Path is the base path of the projects resource.
const Path = handler.APIPath + "/projects"

// Service is the projects API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the projects API handler.
var Handler = Service{}

// Init initializes the projects API handler.
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

type imageRequest struct {
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Order *int   `json:"order"`
}

type projectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
	SectionID   *string `json:"sectionId"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`

	// Images being present (even empty) replaces the whole gallery.
	Images *[]imageRequest `json:"images"`
}

func (r *projectRequest) imageInputs() []project.ImageInput {
	if r.Images == nil {
		return nil
	}

	inputs := make([]project.ImageInput, 0, len(*r.Images))
	for _, img := range *r.Images {
		inputs = append(inputs, project.ImageInput{
			URL:   img.URL,
			Alt:   img.Alt,
			Order: img.Order,
		})
	}

	return inputs
}

// List returns projects, optionally filtered by section.
func (s *Service) List(c *fiber.Ctx) error {
	projs, err := project.List(s.db, project.Filter{
		SectionID: c.Query("sectionId"),
	})
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, projs)
}

// Get returns a single project with its gallery.
func (s *Service) Get(c *fiber.Ctx) error {
	proj, err := project.Get(s.db, c.Params("id"))
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, proj)
}

// Create creates a new project with an optional initial gallery.
func (s *Service) Create(c *fiber.Ctx) error {
	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	proj := models.Project{IsActive: true}
	if req.Title != nil {
		proj.Title = *req.Title
	}
	if req.Description != nil {
		proj.Description = *req.Description
	}
	if req.Thumbnail != nil {
		proj.Thumbnail = *req.Thumbnail
	}
	if req.SectionID != nil {
		proj.SectionID = *req.SectionID
	}
	if req.Order != nil {
		proj.Order = *req.Order
	}
	if req.IsActive != nil {
		proj.IsActive = *req.IsActive
	}

	created, err := project.Create(s.db, &proj, req.imageInputs())
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Created(c, created)
}

// Update applies a partial update; a supplied images list replaces the
// whole gallery.
func (s *Service) Update(c *fiber.Ctx) error {
	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := project.Update(s.db, c.Params("id"), project.Fields{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		SectionID:   req.SectionID,
		Order:       req.Order,
		IsActive:    req.IsActive,
	}, req.imageInputs())
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, updated)
}

// Delete removes a project and its images.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := project.Delete(s.db, c.Params("id")); err != nil {
		return handler.FailErr(c, err)
	}

	return handler.Deleted(c, "Project deleted")
}
