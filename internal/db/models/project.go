package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a single portfolio entry with a description and a
// gallery of images. It belongs to exactly one section.
type Project struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// Thumbnail should be one of the project's image URLs, or empty.
	Thumbnail string `gorm:"size:2048" json:"thumbnail"`
	SectionID string `gorm:"size:36;not null;index" json:"sectionId"`
	Order     int    `gorm:"column:display_order;not null;default:0" json:"order"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
	// Images are owned by the project and replaced as a whole on update.
	Images    []Image   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a random id unless the caller supplied one.
func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	return nil
}
