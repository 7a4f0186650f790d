// Package main provides the entry point of the CrawlDesk admin dashboard.
// It runs a Fiber web server rendering the dashboard screens, each with a
// breadcrumb trail derived from the configured route table, and offers
// commands to list, validate and query that table.
package main
