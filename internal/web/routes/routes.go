// Package routes holds the dashboard's built-in route-to-breadcrumb table.
package routes

import (
	"github.com/pkg/errors"

	"github.com/crawldesk/crawldesk/internal/breadcrumb"
	"github.com/crawldesk/crawldesk/internal/config"
)

// Default is the route table of the CrawlDesk dashboard.
// Order matters only for the sidebar, which lists the top-level entries.
var Default = []breadcrumb.Route{ //nolint:gochecknoglobals
	{Pattern: "/dashboard", Label: "Dashboard", Labels: map[string]string{"de": "Übersicht", "ar": "لوحة التحكم"}},

	{Pattern: "/projects", Label: "Projects", Labels: map[string]string{"de": "Projekte", "ar": "المشاريع"}},
	{Pattern: "/projects/new", Label: "New Project", Labels: map[string]string{"de": "Neues Projekt", "ar": "مشروع جديد"}},
	{Pattern: "/projects/:id", Label: "Project {id}", Labels: map[string]string{"de": "Projekt {id}", "ar": "المشروع {id}"}},
	{Pattern: "/projects/:id/settings", Label: "Settings", Labels: map[string]string{"de": "Einstellungen", "ar": "الإعدادات"}},
	{Pattern: "/projects/:id/crawlers", Label: "Crawlers", Labels: map[string]string{"de": "Crawler", "ar": "الزواحف"}},
	{Pattern: "/projects/:id/crawlers/:crawlerId", Label: "Crawler {crawlerId}"},
	{Pattern: "/projects/:id/crawlers/:crawlerId/runs", Label: "Runs", Labels: map[string]string{"de": "Läufe"}},
	{Pattern: "/projects/:id/crawlers/:crawlerId/runs/:runId", Label: "Run {runId}", Labels: map[string]string{"de": "Lauf {runId}"}},

	{Pattern: "/knowledge-bases", Label: "Knowledge Bases", Labels: map[string]string{"de": "Wissensdatenbanken", "ar": "قواعد المعرفة"}},
	{Pattern: "/knowledge-bases/:kbId", Label: "Knowledge Base {kbId}", Labels: map[string]string{"de": "Wissensdatenbank {kbId}"}},
	{Pattern: "/knowledge-bases/:kbId/documents", Label: "Documents", Labels: map[string]string{"de": "Dokumente", "ar": "المستندات"}},
	{Pattern: "/knowledge-bases/:kbId/documents/:docId", Label: "Document {docId}", Labels: map[string]string{"de": "Dokument {docId}"}},

	{Pattern: "/admin", Label: "Administration", Structural: true, Labels: map[string]string{"de": "Verwaltung", "ar": "الإدارة"}},
	{Pattern: "/admin/users", Label: "Users", Labels: map[string]string{"de": "Benutzer", "ar": "المستخدمون"}},
	{Pattern: "/admin/users/:userId", Label: "User {userId}", Labels: map[string]string{"de": "Benutzer {userId}"}},
	{Pattern: "/admin/providers", Label: "Providers", Labels: map[string]string{"de": "Anbieter", "ar": "المزودون"}},
	{Pattern: "/admin/providers/:provider", Label: "{provider}"},
	{Pattern: "/admin/plans", Label: "Plans", Labels: map[string]string{"de": "Tarife", "ar": "الخطط"}},

	{Pattern: "/billing", Label: "Billing", Labels: map[string]string{"de": "Abrechnung", "ar": "الفوترة"}},
	{Pattern: "/billing/plans", Label: "Plans", Labels: map[string]string{"de": "Tarife", "ar": "الخطط"}},
	{Pattern: "/billing/subscription", Label: "Subscription", Labels: map[string]string{"de": "Abonnement", "ar": "الاشتراك"}},

	{Pattern: "/settings", Label: "Settings", Labels: map[string]string{"de": "Einstellungen", "ar": "الإعدادات"}},
	{Pattern: "/settings/profile", Label: "Profile", Labels: map[string]string{"de": "Profil", "ar": "الملف الشخصي"}},

	{Pattern: "/signup", Label: "Sign Up", Labels: map[string]string{"de": "Registrieren", "ar": "التسجيل"}},
	{Pattern: "/signup/plan", Label: "Choose a Plan", Labels: map[string]string{"de": "Tarif wählen"}},
}

// Table compiles the configured routes, or Default if none are configured.
func Table(nav config.Navigation) (*breadcrumb.Table, error) {
	defs := nav.Routes
	if len(defs) == 0 {
		defs = Default
	}

	table, err := breadcrumb.NewTable(defs, breadcrumb.WithFallback(nav.Fallback))
	if err != nil {
		return nil, errors.Wrap(err, "invalid navigation route table")
	}

	return table, nil
}
