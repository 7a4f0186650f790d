package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
)

func render(t *testing.T, items []breadcrumb.Item, opts Options) string {
	t.Helper()

	out, err := Render(breadcrumb.NewPlan(items, "/dashboard", "Home"), opts)
	require.NoError(t, err)

	return string(out)
}

var projectSettings = []breadcrumb.Item{
	{Label: "Projects", Href: "/projects"},
	{Label: "Project 42", Href: "/projects/42"},
	{Label: "Settings", IsCurrent: true},
}

func TestBreadcrumbs_Empty(t *testing.T) {
	assert.Empty(t, render(t, []breadcrumb.Item{}, Options{}))
}

func TestBreadcrumbs_SingleItem(t *testing.T) {
	out := render(t, []breadcrumb.Item{{Label: "Dashboard", IsCurrent: true}}, Options{})

	assert.Equal(t,
		`<nav class="breadcrumb-nav" aria-label="breadcrumb" hx-boost="true">`+
			`<ol class="breadcrumb"><li class="breadcrumb-item active" aria-current="page">Dashboard</li></ol></nav>`,
		out)
}

func TestBreadcrumbs_ShortTrailIsLinear(t *testing.T) {
	out := render(t, []breadcrumb.Item{
		{Label: "Projects", Href: "/projects"},
		{Label: "Project 42", IsCurrent: true},
	}, Options{})

	assert.Equal(t, 1, strings.Count(out, "<ol"))
	assert.NotContains(t, out, "d-none")
	assert.NotContains(t, out, "breadcrumb-home")
	assert.NotContains(t, out, "breadcrumb-ellipsis")
	assert.Contains(t, out, `<a href="/projects">Projects</a>`)
	assert.Equal(t, 1, strings.Count(out, "breadcrumb-separator"))
}

func TestBreadcrumbs_LongTrailHasBothTrees(t *testing.T) {
	out := render(t, projectSettings, Options{})

	require.Equal(t, 2, strings.Count(out, "<ol"))

	wideStart := strings.Index(out, WideClass)
	narrowStart := strings.Index(out, NarrowClass)
	require.Positive(t, wideStart)
	require.Greater(t, narrowStart, wideStart)

	wide, narrow := out[wideStart:narrowStart], out[narrowStart:]

	assert.Contains(t, wide, `<a href="/dashboard">Home</a>`)
	assert.Contains(t, wide, `<a href="/projects">Projects</a>`)
	assert.Contains(t, wide, `<a href="/projects/42">Project 42</a>`)
	assert.Contains(t, wide, `aria-current="page">Settings</li>`)
	assert.NotContains(t, wide, breadcrumb.Ellipsis)

	assert.Contains(t, narrow, `<a href="/dashboard">Home</a>`)
	assert.Contains(t, narrow, `breadcrumb-ellipsis`)
	assert.NotContains(t, narrow, `href="/projects"`)
	assert.Contains(t, narrow, `<a href="/projects/42">Project 42</a>`)
	assert.Contains(t, narrow, `aria-current="page">Settings</li>`)
}

func TestBreadcrumbs_StructuralItemIsText(t *testing.T) {
	out := render(t, []breadcrumb.Item{
		{Label: "Administration"},
		{Label: "Users", IsCurrent: true},
	}, Options{})

	assert.Contains(t, out, `<span>Administration</span>`)
	assert.NotContains(t, out, `<a href=""`)
}

func TestBreadcrumbs_Options(t *testing.T) {
	out := render(t, projectSettings, Options{Class: "crumbs", Separator: "›", Dir: "rtl"})

	assert.True(t, strings.HasPrefix(out, `<nav class="crumbs"`))
	assert.Contains(t, out, `dir="rtl"`)
	assert.Contains(t, out, ">›</li>")
	assert.NotContains(t, out, DefaultNavClass)
}

func TestBreadcrumbs_EscapesLabels(t *testing.T) {
	out := render(t, []breadcrumb.Item{{Label: `<script>alert("x")</script>`, IsCurrent: true}}, Options{})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
