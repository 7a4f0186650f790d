package web

import (
	"embed"
	"io/fs"
)

const (
	templatesDir = "templates"
	staticDir    = "static"

	// TemplateExt is the file extension of the page templates.
	TemplateExt = ".gohtml"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// Templates returns the embedded template tree rooted at the templates directory.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, templatesDir)
	if err != nil {
		panic(err) // the directory is embedded at compile time
	}

	return sub
}
