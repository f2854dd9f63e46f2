// Package user provides lookup and creation of admin accounts.
package user

import (
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = stderrors.New("database connection is nil")

// FindByUsername retrieves an account by its unique username.
func FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var usr models.User
	if err := db.First(&usr, "username = ?", username).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("User not found")
		}
		return nil, errs.Storage("failed to fetch user", err)
	}

	return &usr, nil
}

// Create inserts a new account.
func Create(db *gorm.DB, usr *models.User) error {
	if db == nil {
		return ErrDBNil
	}

	if usr.Username == "" {
		return errs.Validation("Username is required")
	}

	if err := db.Create(usr).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Conflict("Username already exists", err)
		}
		return errs.Storage("failed to create user", err)
	}

	return nil
}
