package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is one gallery picture belonging to a project. Order defines the
// gallery sequence.
type Image struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	URL       string    `gorm:"size:2048;not null" json:"url"`
	Alt       string    `gorm:"size:255" json:"alt"`
	ProjectID string    `gorm:"size:36;not null;index" json:"projectId"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate assigns a random id unless the caller supplied one.
func (i *Image) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}

	return nil
}
