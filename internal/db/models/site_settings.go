package models

// SiteSettingsID is the fixed id of the singleton settings row.
const SiteSettingsID = "default"

// SiteSettings is the singleton record of global site content: about text,
// contact info, social handles and the hero/profile images. Exactly one row
// with ID "default" exists; it is created with defaults on first read.
type SiteSettings struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	SiteName     string `gorm:"size:255;not null" json:"siteName"`
	Tagline      string `gorm:"size:255" json:"tagline"`
	AboutMe      string `gorm:"type:text" json:"aboutMe"`
	Email        string `gorm:"size:255" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`
	Address      string `gorm:"size:255" json:"address"`
	LinkedIn     string `gorm:"size:2048" json:"linkedIn"`
	GitHub       string `gorm:"size:2048" json:"github"`
	Twitter      string `gorm:"size:2048" json:"twitter"`
	Instagram    string `gorm:"size:2048" json:"instagram"`
	ProfileImage string `gorm:"size:2048" json:"profileImage"`
	HeroImage    string `gorm:"size:2048" json:"heroImage"`
}

// DefaultSiteSettings returns the row created on first read.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:       SiteSettingsID,
		SiteName: "My Portfolio",
		Tagline:  "Creative Developer & Designer",
		AboutMe: "Hello! I'm a creative professional passionate about building " +
			"digital products that are both beautiful and functional.",
	}
}
