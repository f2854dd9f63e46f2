package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "page1")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "page1", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Test Page", "page1")

	// Add first breadcrumb
	ctx.AddBreadcrumb("Admin", "/admin", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Admin", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/admin", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Sections", "/admin/sections", true)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "page1").
		AddBreadcrumb("Admin", "/admin", false).
		AddBreadcrumb("Projects", "/admin/projects", false).
		AddBreadcrumb("Current", "/admin/projects/current", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Admin", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Projects", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Current", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Test Page", "sections")

	assert.True(t, ctx.IsActive("sections"))
	assert.False(t, ctx.IsActive("dashboard"))
}
