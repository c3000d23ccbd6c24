// Package platforms describes the target platforms a game project can
// build for and maps each one to its target framework moniker and
// default graphics platform.
package platforms

import (
	"fmt"
	"strings"
)

// Platform identifies a supported target platform.
type Platform int

const (
	// Windows is the classic Windows desktop platform.
	Windows Platform = iota
	// UWP is the Universal Windows Platform.
	UWP
	// Linux is the Linux desktop platform.
	Linux
	// MacOS is the macOS desktop platform.
	MacOS
	// Android is the Android mobile platform.
	Android
	// IOS is the iOS mobile platform.
	IOS
)

// All returns every supported platform in display order.
func All() []Platform {
	return []Platform{Windows, UWP, Linux, MacOS, Android, IOS}
}

// String returns the platform name as used in build project suffixes.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "Windows"
	case UWP:
		return "UWP"
	case Linux:
		return "Linux"
	case MacOS:
		return "macOS"
	case Android:
		return "Android"
	case IOS:
		return "iOS"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Parse resolves a platform from its name, case-insensitively.
func Parse(name string) (Platform, error) {
	for _, p := range All() {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", name)
}

// TargetFramework returns the target framework moniker a project must
// declare to build for the platform.
func (p Platform) TargetFramework() string {
	switch p {
	case Windows:
		return "net8.0-windows"
	case UWP:
		return "net8.0-windows10.0.22621.0"
	case Linux:
		return "net8.0"
	case MacOS:
		return "net8.0-macos"
	case Android:
		return "net8.0-android"
	case IOS:
		return "net8.0-ios"
	default:
		return ""
	}
}

// GraphicsPlatform returns the default graphics API for the platform.
func (p Platform) GraphicsPlatform() string {
	switch p {
	case Windows, UWP:
		return "Direct3D11"
	case Linux:
		return "Vulkan"
	case MacOS:
		return "OpenGL"
	case Android, IOS:
		return "OpenGLES"
	default:
		return ""
	}
}

// IsMobile reports whether the platform targets mobile devices.
func (p Platform) IsMobile() bool {
	return p == Android || p == IOS
}

// TargetFrameworks returns the deduplicated semicolon-joined framework
// list for a platform selection, preserving selection order.
func TargetFrameworks(selected []Platform) string {
	seen := make(map[string]struct{}, len(selected))
	var tfms []string
	for _, p := range selected {
		tfm := p.TargetFramework()
		if _, ok := seen[tfm]; ok {
			continue
		}
		seen[tfm] = struct{}{}
		tfms = append(tfms, tfm)
	}
	return strings.Join(tfms, ";")
}

// ParseTargetFrameworks maps a semicolon-separated framework list back
// to the platforms it covers. Unknown monikers are skipped.
func ParseTargetFrameworks(list string) []Platform {
	var out []Platform
	for _, tfm := range strings.Split(list, ";") {
		tfm = strings.TrimSpace(tfm)
		for _, p := range All() {
			if tfm == p.TargetFramework() {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
