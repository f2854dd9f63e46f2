// Package link provides CRUD operations for external profile links.
package link

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

const orderAsc = "display_order asc"

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = stderrors.New("database connection is nil")

// Fields holds the updatable attributes of a link. Nil pointers leave the
// current value untouched.
type Fields struct {
	Title    *string
	URL      *string
	Icon     *string
	Order    *int
	IsActive *bool
}

// List retrieves links ordered by display order. With activeOnly only links
// visible on the public site are returned.
func List(db *gorm.DB, activeOnly bool) ([]models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order(orderAsc)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var links []models.Link
	if err := query.Find(&links).Error; err != nil {
		return nil, errs.Storage("failed to fetch links", err)
	}

	return links, nil
}

// Get retrieves a link by id.
func Get(db *gorm.DB, id string) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var lnk models.Link
	if err := db.First(&lnk, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Link not found")
		}
		return nil, errs.Storage("failed to fetch link", err)
	}

	return &lnk, nil
}

// Create inserts a new link.
func Create(db *gorm.DB, lnk *models.Link) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if lnk.Title == "" {
		return nil, errs.Validation("Title is required")
	}
	if lnk.URL == "" {
		return nil, errs.Validation("URL is required")
	}

	lnk.Icon = models.NormalizeIcon(lnk.Icon)

	if err := db.Create(lnk).Error; err != nil {
		return nil, errs.Storage("failed to create link", err)
	}

	return lnk, nil
}

// Update applies the supplied fields to an existing link.
func Update(db *gorm.DB, id string, fields Fields) (*models.Link, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var lnk models.Link
	if err := db.First(&lnk, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Link not found")
		}
		return nil, errs.Storage("failed to fetch link", err)
	}

	if fields.Title != nil {
		lnk.Title = *fields.Title
	}
	if fields.URL != nil {
		lnk.URL = *fields.URL
	}
	if fields.Icon != nil {
		lnk.Icon = models.NormalizeIcon(*fields.Icon)
	}
	if fields.Order != nil {
		lnk.Order = *fields.Order
	}
	if fields.IsActive != nil {
		lnk.IsActive = *fields.IsActive
	}

	if err := db.Save(&lnk).Error; err != nil {
		return nil, errs.Storage("failed to update link", err)
	}

	return &lnk, nil
}

// Delete removes a link by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Link{}, "id = ?", id)
	if result.Error != nil {
		return errs.Storage("failed to delete link", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NotFound("Link not found")
	}

	return nil
}
