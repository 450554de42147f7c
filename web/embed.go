// Package web embeds the static assets served under /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticRoot embed.FS

// StaticFS serves the contents of the static directory without the
// "static/" path prefix.
var StaticFS fs.FS

func init() {
	sub, err := fs.Sub(staticRoot, "static")
	if err != nil {
		panic(err)
	}
	StaticFS = sub
}
