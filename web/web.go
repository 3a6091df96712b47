// Package web embeds the landing page and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views/index.html public
var files embed.FS

// IndexHTML returns the landing page served at "/".
func IndexHTML() []byte {
	b, err := files.ReadFile("views/index.html")
	if err != nil {
		panic(err) // embedded at build time
	}
	return b
}

// Public returns the static asset tree served under /public.
func Public() fs.FS {
	sub, err := fs.Sub(files, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
