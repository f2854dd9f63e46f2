// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section represents a top-level grouping of portfolio projects,
// for example "Web Development".
type Section struct {
	// ID is the unique identifier for the section. It is stable and may be
	// used as a slug, so seeded sections can carry readable ids.
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Title is the section heading shown on the public site.
	Title string `gorm:"size:255;not null" json:"title"`
	// Description is an optional introduction text.
	Description string `gorm:"type:text" json:"description"`
	// Order defines the display sequence among sections (ascending).
	Order int `gorm:"column:display_order;not null;default:0" json:"order"`
	// IsActive controls visibility on the public site.
	IsActive bool `gorm:"not null;default:true" json:"isActive"`
	// Projects are owned by the section and removed with it.
	Projects  []Project `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a random id unless the caller supplied a slug.
func (s *Section) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	return nil
}
