package gameproject

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchProjectText_ReplacesDeclaration(t *testing.T) {
	source := `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net472</TargetFramework>
    <OutputType>WinExe</OutputType>
  </PropertyGroup>
</Project>`

	out, changed, err := PatchProjectText(source, `<TargetFrameworks>net8.0;net8.0-ios</TargetFrameworks>`)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, out, "<TargetFrameworks>net8.0;net8.0-ios</TargetFrameworks>")
	assert.NotContains(t, out, "net472")
	assert.Contains(t, out, "<OutputType>WinExe</OutputType>")
}

func TestPatchProject_RewritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Game.csproj")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf"+`<?xml version="1.0" encoding="utf-8"?>
<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net472</TargetFramework>
  </PropertyGroup>
  <PropertyGroup>
    <TargetFramework>net6.0-windows</TargetFramework>
  </PropertyGroup>
</Project>`), 0o644))

	changed, err := PatchProject(path, `<TargetFrameworks>net6.0;net6.0-windows</TargetFrameworks>`)
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "\xef\xbb\xbf<?xml"), "BOM and declaration preserved")
	assert.Equal(t, 1, strings.Count(text, "<TargetFramework"), "exactly one declaration survives: %s", text)
	assert.Contains(t, text, "<TargetFrameworks>net6.0;net6.0-windows</TargetFrameworks>")

	// No stray temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPatchProject_NoAnchorLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Game.csproj")
	original := `<Project>
  <PropertyGroup>
    <RootNamespace>Game</RootNamespace>
  </PropertyGroup>
</Project>`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	changed, err := PatchProject(path, `<TargetFramework>net8.0</TargetFramework>`)
	require.NoError(t, err)
	assert.False(t, changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "file bytes untouched on no-op")
}

func TestPatchProject_ParseErrorLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Game.csproj")
	original := `<Project><Unclosed>`
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	_, err := PatchProject(path, `<TargetFramework>net8.0</TargetFramework>`)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestPatchProject_MissingFile(t *testing.T) {
	_, err := PatchProject(filepath.Join(t.TempDir(), "Missing.csproj"), `<TargetFramework>net8.0</TargetFramework>`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read project file")
}

func TestPatchProject_InvalidFragment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Game.csproj")
	require.NoError(t, os.WriteFile(path, []byte(`<Project />`), 0o644))

	_, err := PatchProject(path, `<Broken`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse fragment")
}
