package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/webfolio-cms/webfolio/internal/web/handler/login"
	"github.com/webfolio-cms/webfolio/internal/web/session"
)

// AdminPath is the prefix of the guarded admin panel.
const AdminPath = "/admin"

// Middleware is a Fiber middleware that checks for user authentication on
// admin pages. Everything else passes through.
func Middleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		isAdminPage   = IsAdminPage(c)
		sessDataValid bool
	)

	if !isAdminPage && !isLoginPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies("session")

	// if no session cookie, redirect to login page
	if loginCookie == "" && !isLoginPage {
		return c.Redirect(login.Path)
	}

	// check session validity
	sessData := new(session.Data)
	if err := sessData.Read(loginCookie); err != nil {
		// If we're already on the login page, don't redirect (would cause loop)
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(login.Path)
	}

	// valid data in session
	if sessData.User.ID > 0 {
		sessDataValid = true
		// Add the current user to locals for template access
		c.Locals("CurrentUser", sessData.User)
	}

	if sessDataValid && isLoginPage {
		return c.Redirect(AdminPath)
	}

	if !sessDataValid && isAdminPage {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsAdminPage checks if the current request is for an admin panel page.
func IsAdminPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, AdminPath)
}
