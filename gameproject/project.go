// Package gameproject loads game project files and reconfigures the
// target platforms they build for.
package gameproject

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Aminator9000/xenko/platforms"
	"github.com/Aminator9000/xenko/xmlmerge"
)

// GameProject represents a loaded game project file.
type GameProject struct {
	Path             string
	Name             string
	RootNamespace    string
	TargetFrameworks []string
}

// Platforms returns the platforms covered by the project's current
// target framework declarations.
func (p *GameProject) Platforms() []platforms.Platform {
	return platforms.ParseTargetFrameworks(strings.Join(p.TargetFrameworks, ";"))
}

// Load reads and parses a game project file. The root namespace defaults
// to the sanitized project name when the project does not declare one.
func Load(path string) (*GameProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	doc, err := xmlmerge.ParseString(stripBOM(string(data)))
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", path, err)
	}

	proj := &GameProject{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	for _, pg := range doc.Root.Elements("PropertyGroup") {
		for _, prop := range pg.Children {
			switch prop.Name.Local {
			case "RootNamespace":
				proj.RootNamespace = prop.Text
			case "TargetFramework":
				if prop.Text != "" {
					proj.TargetFrameworks = append(proj.TargetFrameworks, prop.Text)
				}
			case "TargetFrameworks":
				for _, tfm := range strings.Split(prop.Text, ";") {
					if tfm = strings.TrimSpace(tfm); tfm != "" {
						proj.TargetFrameworks = append(proj.TargetFrameworks, tfm)
					}
				}
			}
		}
	}

	if proj.RootNamespace == "" {
		proj.RootNamespace = SanitizeNamespace(proj.Name)
	}

	return proj, nil
}

// FindProjectFile finds the single .csproj file in the directory.
func FindProjectFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csproj"))
	if err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w in directory %s", ErrNoGameProject, dir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w in directory %s, specify which project to use", ErrMultipleGameProjects, dir)
	}
}

// SanitizeNamespace converts a project name into a valid root namespace:
// characters that cannot appear in an identifier become underscores, and
// a leading digit is prefixed with one.
func SanitizeNamespace(name string) string {
	var sb strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == '.':
			sb.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\xef\xbb\xbf")
}
