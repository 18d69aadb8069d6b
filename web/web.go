// Package web holds the embedded frontend templates so the demo pages
// serve regardless of the process working directory.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
