package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLinkIcon is used when a link icon is not in the known set.
const DefaultLinkIcon = "website"

// knownLinkIcons is the set the renderer can resolve to an icon glyph.
var knownLinkIcons = map[string]struct{}{
	"website":   {},
	"github":    {},
	"linkedin":  {},
	"twitter":   {},
	"instagram": {},
	"youtube":   {},
	"dribbble":  {},
	"behance":   {},
	"email":     {},
}

// Link is an external profile or social link shown in the UI.
type Link struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	URL       string    `gorm:"size:2048;not null" json:"url"`
	Icon      string    `gorm:"size:50" json:"icon"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a random id unless the caller supplied one.
func (l *Link) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}

	return nil
}

// NormalizeIcon maps a free-form icon string to the known set,
// falling back to the website icon.
func NormalizeIcon(icon string) string {
	if _, ok := knownLinkIcons[icon]; ok {
		return icon
	}

	return DefaultLinkIcon
}
