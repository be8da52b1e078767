package web

import (
	"embed"
	"io/fs"
	"path"
)

const templateDir = "templates"

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS serves the embedded templates directory as the root of an fs.FS,
// so template names do not carry the directory prefix.
type templateEmbedFS struct {
	content embed.FS
}

// Open opens name relative to the templates directory.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join(templateDir, name))
}
