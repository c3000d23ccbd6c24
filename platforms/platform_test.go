package platforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, p := range All() {
		parsed, err := Parse(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	p, err := Parse("windows")
	require.NoError(t, err)
	assert.Equal(t, Windows, p)

	p, err = Parse("IOS")
	require.NoError(t, err)
	assert.Equal(t, IOS, p)
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("PlayStation")
	assert.Error(t, err)
}

func TestTargetFramework_AllPlatformsMapped(t *testing.T) {
	for _, p := range All() {
		assert.NotEmpty(t, p.TargetFramework(), "platform %s", p)
		assert.NotEmpty(t, p.GraphicsPlatform(), "platform %s", p)
	}
}

func TestTargetFrameworks_JoinAndDedup(t *testing.T) {
	tests := []struct {
		name     string
		selected []Platform
		want     string
	}{
		{"single", []Platform{Windows}, "net8.0-windows"},
		{"multiple", []Platform{Windows, Android}, "net8.0-windows;net8.0-android"},
		{"duplicate platform", []Platform{Linux, Linux}, "net8.0"},
		{"order preserved", []Platform{IOS, Windows}, "net8.0-ios;net8.0-windows"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetFrameworks(tt.selected))
		})
	}
}

func TestParseTargetFrameworks(t *testing.T) {
	got := ParseTargetFrameworks("net8.0-windows;net8.0-android;net9.9-unknown")
	assert.Equal(t, []Platform{Windows, Android}, got)
}

func TestIsMobile(t *testing.T) {
	assert.True(t, Android.IsMobile())
	assert.True(t, IOS.IsMobile())
	assert.False(t, Windows.IsMobile())
	assert.False(t, Linux.IsMobile())
}
