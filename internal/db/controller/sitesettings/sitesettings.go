// Package sitesettings manages the singleton site settings row.
package sitesettings

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = stderrors.New("database connection is nil")

// Fields holds the updatable site settings attributes. Nil pointers leave the
// current value untouched.
type Fields struct {
	SiteName     *string
	Tagline      *string
	AboutMe      *string
	Email        *string
	Phone        *string
	Address      *string
	LinkedIn     *string
	GitHub       *string
	Twitter      *string
	Instagram    *string
	ProfileImage *string
	HeroImage    *string
}

// Get returns the settings row, creating it with defaults on first read.
// Repeated calls return the same single row.
func Get(db *gorm.DB) (*models.SiteSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings models.SiteSettings
	err := db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err == nil {
		return &settings, nil
	}

	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Storage("failed to fetch settings", err)
	}

	settings = models.DefaultSiteSettings()
	if err := db.Create(&settings).Error; err != nil {
		// a concurrent first read may have created the row already
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.First(&settings, "id = ?", models.SiteSettingsID).Error; err != nil {
				return nil, errs.Storage("failed to fetch settings", err)
			}
			return &settings, nil
		}
		return nil, errs.Storage("failed to create settings", err)
	}

	return &settings, nil
}

// Update upserts the settings row, applying only the supplied fields.
func Update(db *gorm.DB, fields Fields) (*models.SiteSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	settings, err := Get(db)
	if err != nil {
		return nil, err
	}

	apply(settings, fields)

	if err := db.Save(settings).Error; err != nil {
		return nil, errs.Storage("failed to update settings", err)
	}

	return settings, nil
}

func apply(s *models.SiteSettings, f Fields) {
	if f.SiteName != nil {
		s.SiteName = *f.SiteName
	}
	if f.Tagline != nil {
		s.Tagline = *f.Tagline
	}
	if f.AboutMe != nil {
		s.AboutMe = *f.AboutMe
	}
	if f.Email != nil {
		s.Email = *f.Email
	}
	if f.Phone != nil {
		s.Phone = *f.Phone
	}
	if f.Address != nil {
		s.Address = *f.Address
	}
	if f.LinkedIn != nil {
		s.LinkedIn = *f.LinkedIn
	}
	if f.GitHub != nil {
		s.GitHub = *f.GitHub
	}
	if f.Twitter != nil {
		s.Twitter = *f.Twitter
	}
	if f.Instagram != nil {
		s.Instagram = *f.Instagram
	}
	if f.ProfileImage != nil {
		s.ProfileImage = *f.ProfileImage
	}
	if f.HeroImage != nil {
		s.HeroImage = *f.HeroImage
	}
}
