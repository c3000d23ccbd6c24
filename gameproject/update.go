package gameproject

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aminator9000/xenko/observability"
	"github.com/Aminator9000/xenko/platforms"
)

// Renderer produces the content an update writes: the property fragment
// declaring the selected frameworks and per-platform build projects.
type Renderer interface {
	RenderTargetFrameworks(selected []platforms.Platform) (string, error)
	RenderBuildProject(p platforms.Platform, namespace string) (string, error)
}

// Updater reconfigures the platforms a game project supports: it
// regenerates the per-platform build projects and patches the game
// project's target framework declarations.
type Updater struct {
	Log      observability.Logger
	Renderer Renderer
}

// BuildProjectPath returns the path of the build project generated for
// a platform, next to the game project file.
func BuildProjectPath(proj *GameProject, p platforms.Platform) string {
	name := fmt.Sprintf("%s.%s.csproj", proj.Name, p)
	return filepath.Join(filepath.Dir(proj.Path), name)
}

// Update regenerates build projects for the selected platforms and
// merges their target frameworks into the game project file.
func (u *Updater) Update(proj *GameProject, selected []platforms.Platform) error {
	if proj == nil {
		return ErrNoGameProject
	}
	if len(selected) == 0 {
		return ErrNoPlatformsSelected
	}

	log := u.Log
	if log == nil {
		log = observability.NewNullLogger()
	}
	log = log.ForContext("Project", proj.Name)

	for _, p := range selected {
		content, err := u.Renderer.RenderBuildProject(p, proj.RootNamespace)
		if err != nil {
			return err
		}
		path := BuildProjectPath(proj, p)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write build project: %w", err)
		}
		log.Info("Generated build project {Path} for {Platform}", path, p.String())
	}

	fragment, err := u.Renderer.RenderTargetFrameworks(selected)
	if err != nil {
		return err
	}

	changed, err := PatchProject(proj.Path, fragment)
	if err != nil {
		return err
	}
	if !changed {
		log.Warn("No target framework declaration found in {Path}, project left unchanged", proj.Path)
		return nil
	}

	log.Info("Patched {Path} for platforms {Platforms}", proj.Path, platforms.TargetFrameworks(selected))
	return nil
}
