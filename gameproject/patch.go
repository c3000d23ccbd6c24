package gameproject

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aminator9000/xenko/xmlmerge"
)

// TargetFrameworkFilter matches the MSBuild properties that declare
// which frameworks a project builds for.
var TargetFrameworkFilter = xmlmerge.ByName("TargetFramework", "TargetFrameworks")

const propertyGroupName = "PropertyGroup"

// PatchProjectText merges the rendered property fragment into the
// project document text. It is a pure transformation; see PatchProject
// for the file-backed form. The returned bool reports whether the merge
// found a declaration to patch.
func PatchProjectText(source, fragment string) (string, bool, error) {
	return xmlmerge.MergeText(source, fragment, propertyGroupName, TargetFrameworkFilter)
}

// PatchProject merges the rendered property fragment into the project
// file at path, replacing the first target framework declaration and
// removing redundant ones. The file is rewritten through a temporary
// file in the same directory so a failed write never truncates the
// original. Returns whether the file was modified.
//
// PatchProject does no locking; concurrent callers patching the same
// path must serialize externally.
func PatchProject(path, fragment string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read project file: %w", err)
	}

	merged, changed, err := PatchProjectText(stripBOM(string(data)), fragment)
	if err != nil {
		return false, fmt.Errorf("patch project %s: %w", path, err)
	}
	if !changed {
		return false, nil
	}

	if err := writeProjectFile(path, merged); err != nil {
		return false, fmt.Errorf("write project file: %w", err)
	}
	return true, nil
}

// writeProjectFile writes content with UTF-8 BOM and XML declaration
// (required for .NET tooling compatibility), then renames into place.
func writeProjectFile(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
