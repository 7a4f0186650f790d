package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACNFatalLogMsg is used if app, cfg or the navigation builder is nil.
	ErrNilACNFatalLogMsg = "app, cfg or navigation builder is nil"
)
