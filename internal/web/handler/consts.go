package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// MessageKey is the JSON key of the user facing message in error and status responses.
	MessageKey = "message"

	// ErrorsKey is the JSON key of the per field validation messages.
	ErrorsKey = "errors"
)
