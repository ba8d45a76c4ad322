// Package templates holds the embedded page templates. Rendering is a
// thin collaborator of the handlers: every page parses against the
// shared base layout.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
