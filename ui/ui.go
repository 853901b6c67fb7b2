// Package ui holds the browser search page served under /ui/.
package ui

import "embed"

//go:embed index.html app.js style.css
var Files embed.FS
