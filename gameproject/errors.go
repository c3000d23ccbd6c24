package gameproject

import "errors"

var (
	// ErrNoGameProject indicates no game project file was found
	ErrNoGameProject = errors.New("no game project found")

	// ErrMultipleGameProjects indicates more than one candidate project file was found
	ErrMultipleGameProjects = errors.New("multiple game projects found")

	// ErrNoPlatformsSelected indicates an update was requested with an empty platform selection
	ErrNoPlatformsSelected = errors.New("no platforms selected")
)
