package daemon

import (
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial data if user table is empty

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		// Create default admin user, change the password after first login
		db.Create(
			&models.User{
				Username: "admin",
				Password: models.HashPassword("changeme"),
				Active:   true,
			},
		)
	}

	// Seed sample content on a fresh database
	db.Model(&models.Section{}).Count(&count)
	if count == 0 {
		web := models.Section{
			ID:          "web-development",
			Title:       "Web Development",
			Description: "Full-stack web applications built with modern technologies",
			Order:       0,
			IsActive:    true,
		}
		design := models.Section{
			ID:          "ui-design",
			Title:       "UI/UX Design",
			Description: "Beautiful and intuitive user interface designs",
			Order:       1,
			IsActive:    true,
		}

		db.Create(&web)
		db.Create(&design)

		db.Create(&models.Project{
			Title: "E-Commerce Platform",
			Description: "A full-featured e-commerce platform with payment integration, " +
				"inventory management, and analytics dashboard.",
			SectionID: web.ID,
			Order:     0,
			IsActive:  true,
		})
		db.Create(&models.Project{
			Title: "Mobile Banking App",
			Description: "Clean and modern mobile banking application design with focus " +
				"on usability and security.",
			SectionID: design.ID,
			Order:     0,
			IsActive:  true,
		})
	}
}
