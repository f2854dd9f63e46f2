// Package project provides CRUD operations for portfolio projects and their
// image galleries.
package project

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

const orderAsc = "display_order asc"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = stderrors.New("database connection is nil")

// Filter narrows List results.
type Filter struct {
	SectionID  string
	ActiveOnly bool
}

// Fields holds the updatable attributes of a project. Nil pointers leave the
// current value untouched.
type Fields struct {
	Title       *string
	Description *string
	Thumbnail   *string
	SectionID   *string
	Order       *int
	IsActive    *bool
}

// ImageInput is one gallery entry supplied on create or update.
type ImageInput struct {
	URL   string
	Alt   string
	Order *int
}

// List retrieves projects ordered by display order, with images preloaded in
// gallery order.
func List(db *gorm.DB, filter Filter) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order(orderAsc).
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderAsc)
		})

	if filter.SectionID != "" {
		query = query.Where("section_id = ?", filter.SectionID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, errs.Storage("failed to fetch projects", err)
	}

	return projects, nil
}

// Get retrieves a project by id with its images in gallery order.
func Get(db *gorm.DB, id string) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var proj models.Project
	err := db.
		Preload("Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderAsc)
		}).
		First(&proj, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Project not found")
		}
		return nil, errs.Storage("failed to fetch project", err)
	}

	return &proj, nil
}

// Create inserts a new project with an optional initial image gallery.
// Image order is taken from the supplied per-image order, falling back to
// the input array index. A missing image alt defaults to the project title.
func Create(db *gorm.DB, proj *models.Project, images []ImageInput) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if proj.Title == "" {
		return nil, errs.Validation("Title is required")
	}
	if proj.SectionID == "" {
		return nil, errs.Validation("Section id is required")
	}

	if err := sectionExists(db, proj.SectionID); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(proj).Error; err != nil {
			return errs.Storage("failed to create project", err)
		}

		return insertImages(tx, proj, images)
	})
	if err != nil {
		return nil, err
	}

	return Get(db, proj.ID)
}

// Update applies the supplied fields to an existing project. When images is
// non-nil the whole gallery is replaced: all prior images of the project are
// deleted and the new set inserted, atomically.
func Update(db *gorm.DB, id string, fields Fields, images []ImageInput) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var proj models.Project
		if err := tx.First(&proj, "id = ?", id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Project not found")
			}
			return errs.Storage("failed to fetch project", err)
		}

		if fields.Title != nil {
			proj.Title = *fields.Title
		}
		if fields.Description != nil {
			proj.Description = *fields.Description
		}
		if fields.Thumbnail != nil {
			proj.Thumbnail = *fields.Thumbnail
		}
		if fields.SectionID != nil && *fields.SectionID != proj.SectionID {
			if err := sectionExists(tx, *fields.SectionID); err != nil {
				return err
			}
			proj.SectionID = *fields.SectionID
		}
		if fields.Order != nil {
			proj.Order = *fields.Order
		}
		if fields.IsActive != nil {
			proj.IsActive = *fields.IsActive
		}

		if err := tx.Omit("Images").Save(&proj).Error; err != nil {
			return errs.Storage("failed to update project", err)
		}

		if images == nil {
			return nil
		}

		// full replace: drop the old gallery, then recreate it
		if err := tx.Where("project_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return errs.Storage("failed to delete project images", err)
		}

		return insertImages(tx, &proj, images)
	})
	if err != nil {
		return nil, err
	}

	return Get(db, id)
}

// Delete removes a project and its images inside a transaction.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var proj models.Project
		if err := tx.First(&proj, "id = ?", id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Project not found")
			}
			return errs.Storage("failed to fetch project", err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return errs.Storage("failed to delete project images", err)
		}

		if err := tx.Delete(&proj).Error; err != nil {
			return errs.Storage("failed to delete project", err)
		}

		return nil
	})
}

func sectionExists(db *gorm.DB, id string) error {
	var count int64
	if err := db.Model(&models.Section{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errs.Storage("failed to check section", err)
	}
	if count == 0 {
		return errs.Conflict("Section does not exist", nil)
	}

	return nil
}

func insertImages(tx *gorm.DB, proj *models.Project, images []ImageInput) error {
	for idx, img := range images {
		order := idx
		if img.Order != nil {
			order = *img.Order
		}

		alt := img.Alt
		if alt == "" {
			alt = proj.Title
		}

		record := models.Image{
			URL:       img.URL,
			Alt:       alt,
			ProjectID: proj.ID,
			Order:     order,
		}

		if err := tx.Create(&record).Error; err != nil {
			return errs.Storage("failed to create project image", err)
		}
	}

	return nil
}
