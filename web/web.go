// Package web embeds the HTML templates and static assets of the UI.
package web

import "embed"

// FS holds templates/ and static/.
//
//go:embed templates/*.html static/*
var FS embed.FS
