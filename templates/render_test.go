package templates

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aminator9000/xenko/platforms"
)

func TestRenderTargetFrameworks_Single(t *testing.T) {
	out, err := Renderer{}.RenderTargetFrameworks([]platforms.Platform{platforms.Windows})
	require.NoError(t, err)
	assert.Equal(t, "<TargetFramework>net8.0-windows</TargetFramework>\n", out)
}

func TestRenderTargetFrameworks_Multiple(t *testing.T) {
	out, err := Renderer{}.RenderTargetFrameworks([]platforms.Platform{platforms.Linux, platforms.Android})
	require.NoError(t, err)
	assert.Equal(t, "<TargetFrameworks>net8.0;net8.0-android</TargetFrameworks>\n", out)
}

func TestRenderBuildProject(t *testing.T) {
	out, err := Renderer{}.RenderBuildProject(platforms.Android, "SpaceEscape")
	require.NoError(t, err)

	assert.Contains(t, out, "<TargetFramework>net8.0-android</TargetFramework>")
	assert.Contains(t, out, "<XenkoPlatform>Android</XenkoPlatform>")
	assert.Contains(t, out, "<XenkoGraphicsApi>OpenGLES</XenkoGraphicsApi>")
	assert.Contains(t, out, "<RootNamespace>SpaceEscape</RootNamespace>")
	assert.Contains(t, out, `..\SpaceEscape.Game\SpaceEscape.Game.csproj`)

	// ProjectGuid is a fresh brace-wrapped uppercase GUID.
	start := strings.Index(out, "<ProjectGuid>{")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(out, "}</ProjectGuid>")
	require.Greater(t, end, start)
	guid := out[start+len("<ProjectGuid>{") : end]
	_, err = uuid.Parse(guid)
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(guid), guid)
}

func TestRenderBuildProject_UniqueGuids(t *testing.T) {
	a, err := Renderer{}.RenderBuildProject(platforms.Windows, "Game")
	require.NoError(t, err)
	b, err := Renderer{}.RenderBuildProject(platforms.Windows, "Game")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing.tmpl", nil)
	assert.Error(t, err)
}
