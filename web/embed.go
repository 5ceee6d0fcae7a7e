package web

import "embed"

// StaticFS contains the admin seeding page.
//
//go:embed static
var StaticFS embed.FS
