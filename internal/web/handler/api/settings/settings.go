// Package settings implements the /api/settings resource: the singleton site
// settings row with get-or-create semantics.
package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/config"
	"github.com/webfolio-cms/webfolio/internal/db/controller/sitesettings"
	"github.com/webfolio-cms/webfolio/internal/web/handler"
)

// Path is the base path of the settings resource.
const Path = handler.APIPath + "/settings"

// Service is the settings API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the settings API handler.
var Handler = Service{}

// Init initializes the settings API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Put(Path, s.Update)
}

type settingsRequest struct {
	SiteName     *string `json:"siteName"`
	Tagline      *string `json:"tagline"`
	AboutMe      *string `json:"aboutMe"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	LinkedIn     *string `json:"linkedIn"`
	GitHub       *string `json:"github"`
	Twitter      *string `json:"twitter"`
	Instagram    *string `json:"instagram"`
	ProfileImage *string `json:"profileImage"`
	HeroImage    *string `json:"heroImage"`
}

// Get returns the settings row, creating it with defaults when absent.
func (s *Service) Get(c *fiber.Ctx) error {
	stt, err := sitesettings.Get(s.db)
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, stt)
}

// Update upserts the settings row with the supplied fields.
func (s *Service) Update(c *fiber.Ctx) error {
	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	stt, err := sitesettings.Update(s.db, sitesettings.Fields{
		SiteName:     req.SiteName,
		Tagline:      req.Tagline,
		AboutMe:      req.AboutMe,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		LinkedIn:     req.LinkedIn,
		GitHub:       req.GitHub,
		Twitter:      req.Twitter,
		Instagram:    req.Instagram,
		ProfileImage: req.ProfileImage,
		HeroImage:    req.HeroImage,
	})
	if err != nil {
		return handler.FailErr(c, err)
	}

	return handler.OK(c, stt)
}
