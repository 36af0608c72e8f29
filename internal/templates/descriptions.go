package templates

import "strings"

var fileDescriptions = map[string]string{
	"package.json":       "Package manifest",
	"tsconfig.json":      "TypeScript configuration",
	"tsup.config.ts":     "Library bundler configuration",
	"vite.config.ts":     "Vite configuration",
	"postcss.config.cjs": "PostCSS configuration",
	"index.html":         "HTML entry point",
	".gitignore":         "Git ignore rules",
	"README.md":          "Project readme",
	"src/index.ts":       "Library entry point",
	"src/main.tsx":       "Application entry point",
	"src/App.tsx":        "Root component",
}

// FileDescription returns a short description for a generated file, or "".
func FileDescription(rel string) string {
	if desc, ok := fileDescriptions[rel]; ok {
		return desc
	}
	if strings.HasPrefix(rel, "public/") {
		return "Static asset"
	}
	return ""
}
