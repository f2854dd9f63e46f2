// Package section provides CRUD operations for portfolio sections.
package section

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

const orderAsc = "display_order asc"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = stderrors.New("database connection is nil")

// Fields holds the updatable attributes of a section. Nil pointers leave the
// current value untouched.
type Fields struct {
	Title       *string
	Description *string
	Order       *int
	IsActive    *bool
}

// List retrieves sections ordered by display order. With activeOnly only
// sections visible on the public site are returned.
func List(db *gorm.DB, activeOnly bool) ([]models.Section, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order(orderAsc)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var sections []models.Section
	if err := query.Find(&sections).Error; err != nil {
		return nil, errs.Storage("failed to fetch sections", err)
	}

	return sections, nil
}

// ListWithProjects retrieves sections with their projects and images
// preloaded, each level ordered by display order. With activeOnly inactive
// sections and projects are filtered out.
func ListWithProjects(db *gorm.DB, activeOnly bool) ([]models.Section, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order(orderAsc).
		Preload("Projects", func(tx *gorm.DB) *gorm.DB {
			if activeOnly {
				tx = tx.Where("is_active = ?", true)
			}
			return tx.Order(orderAsc)
		}).
		Preload("Projects.Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderAsc)
		})

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var sections []models.Section
	if err := query.Find(&sections).Error; err != nil {
		return nil, errs.Storage("failed to fetch sections", err)
	}

	return sections, nil
}

// Get retrieves a section by id with projects and images preloaded.
func Get(db *gorm.DB, id string) (*models.Section, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var section models.Section
	err := db.
		Preload("Projects", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderAsc)
		}).
		Preload("Projects.Images", func(tx *gorm.DB) *gorm.DB {
			return tx.Order(orderAsc)
		}).
		First(&section, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Section not found")
		}
		return nil, errs.Storage("failed to fetch section", err)
	}

	return &section, nil
}

// Create inserts a new section. The id is generated unless supplied as a slug.
func Create(db *gorm.DB, sec *models.Section) (*models.Section, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if sec.Title == "" {
		return nil, errs.Validation("Title is required")
	}

	if err := db.Create(sec).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflict("Section id already exists", err)
		}
		return nil, errs.Storage("failed to create section", err)
	}

	return sec, nil
}

// Update applies the supplied fields to an existing section.
func Update(db *gorm.DB, id string, fields Fields) (*models.Section, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sec models.Section
	if err := db.First(&sec, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Section not found")
		}
		return nil, errs.Storage("failed to fetch section", err)
	}

	if fields.Title != nil {
		sec.Title = *fields.Title
	}
	if fields.Description != nil {
		sec.Description = *fields.Description
	}
	if fields.Order != nil {
		sec.Order = *fields.Order
	}
	if fields.IsActive != nil {
		sec.IsActive = *fields.IsActive
	}

	if err := db.Save(&sec).Error; err != nil {
		return nil, errs.Storage("failed to update section", err)
	}

	return &sec, nil
}

// Delete removes a section and, transitively, its projects and their images.
// The cascade is performed as explicit ordered deletes inside a transaction
// so engines without foreign key enforcement behave identically.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var sec models.Section
		if err := tx.First(&sec, "id = ?", id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Section not found")
			}
			return errs.Storage("failed to fetch section", err)
		}

		err := tx.
			Where("project_id IN (?)", tx.Model(&models.Project{}).Select("id").Where("section_id = ?", id)).
			Delete(&models.Image{}).Error
		if err != nil {
			return errs.Storage("failed to delete section images", err)
		}

		if err := tx.Where("section_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return errs.Storage("failed to delete section projects", err)
		}

		if err := tx.Delete(&sec).Error; err != nil {
			return errs.Storage("failed to delete section", err)
		}

		return nil
	})
}
