package web

import "embed"

// TemplatesFS embeds the single-page UI served at the root path.
//go:embed templates/*.html
var TemplatesFS embed.FS
