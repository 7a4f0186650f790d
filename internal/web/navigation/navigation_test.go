package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "/projects/42/settings")

	assert.Equal(t, "/projects/42/settings", ctx.Path)
	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "projects", ctx.ActiveSection)
	assert.Equal(t, "en", ctx.Lang)
	assert.Equal(t, "ltr", ctx.Dir)
	assert.NotNil(t, ctx.Sections)
	assert.True(t, ctx.Breadcrumbs.Empty())
}

func TestContext_Chaining(t *testing.T) {
	plan := breadcrumb.NewPlan([]breadcrumb.Item{
		{Label: "Projects", Href: "/projects"},
		{Label: "Project 42", IsCurrent: true},
	}, "/dashboard", "Home")

	ctx := NewContext("", "/projects/42").
		WithLang("ar", "rtl").
		WithSections([]Section{{Key: "projects", Title: "Projects", URL: "/projects"}}).
		WithBreadcrumbs(plan)

	assert.Equal(t, "Project 42", ctx.PageTitle)
	assert.Equal(t, "ar", ctx.Lang)
	assert.Equal(t, "rtl", ctx.Dir)
	assert.Len(t, ctx.Sections, 1)
	assert.Equal(t, plan, ctx.Breadcrumbs)
}

func TestContext_WithBreadcrumbs_KeepsTitle(t *testing.T) {
	plan := breadcrumb.NewPlan([]breadcrumb.Item{{Label: "Projects", IsCurrent: true}}, "", "")

	ctx := NewContext("All Projects", "/projects").WithBreadcrumbs(plan)
	assert.Equal(t, "All Projects", ctx.PageTitle)
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Test Page", "/admin/users")

	// Should return true when section matches
	assert.True(t, ctx.IsSectionActive("admin"))

	// Should return false when section doesn't match
	assert.False(t, ctx.IsSectionActive("dashboard"))
	assert.False(t, ctx.IsSectionActive("users"))
}

func TestSectionKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", ""},
		{"", ""},
		{"/dashboard", "dashboard"},
		{"/projects/42", "projects"},
		{"//projects", "projects"},
		{"/billing?tab=plans", "billing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionKey(tt.path))
		})
	}
}
