// Package templates renders MSBuild property fragments and per-platform
// build projects from embedded templates.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/Aminator9000/xenko/platforms"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Options is the option mapping handed to a template.
type Options map[string]any

var parsed = template.Must(template.New("xenko").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(templateFS, "templates/*.tmpl"))

// Render executes the named template with the given options.
func Render(name string, opts Options) (string, error) {
	var sb strings.Builder
	if err := parsed.ExecuteTemplate(&sb, name, opts); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return sb.String(), nil
}

// Renderer produces project content for platform retargeting.
type Renderer struct{}

// RenderTargetFrameworks renders the property fragment declaring the
// frameworks for a platform selection. A single platform yields a
// TargetFramework property, several yield a TargetFrameworks list.
func (Renderer) RenderTargetFrameworks(selected []platforms.Platform) (string, error) {
	return Render("targetframeworks.tmpl", Options{
		"TargetFrameworks": platforms.TargetFrameworks(selected),
		"Single":           len(selected) == 1,
	})
}

// RenderBuildProject renders a complete per-platform build project with
// a fresh project GUID.
func (Renderer) RenderBuildProject(p platforms.Platform, namespace string) (string, error) {
	return Render("buildproject.tmpl", Options{
		"Platform":         p.String(),
		"TargetFramework":  p.TargetFramework(),
		"GraphicsPlatform": p.GraphicsPlatform(),
		"RootNamespace":    namespace,
		"ProjectGuid":      strings.ToUpper(uuid.NewString()),
	})
}
