package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpener(t *testing.T) {
	tests := []struct {
		goos    string
		name    string
		wantErr bool
	}{
		{"darwin", "open", false},
		{"linux", "xdg-open", false},
		{"freebsd", "xdg-open", false},
		{"windows", "rundll32", false},
		{"plan9", "", true},
	}
	for _, tt := range tests {
		name, _, err := Opener(tt.goos)
		if tt.wantErr {
			assert.Error(t, err, tt.goos)
			continue
		}
		assert.NoError(t, err, tt.goos)
		assert.Equal(t, tt.name, name, tt.goos)
	}
}

func TestAppearanceQuery(t *testing.T) {
	name, args, ok := AppearanceQuery("darwin")
	assert.True(t, ok)
	assert.Equal(t, "defaults", name)
	assert.Equal(t, []string{"read", "-g", "AppleInterfaceStyle"}, args)

	name, _, ok = AppearanceQuery("linux")
	assert.True(t, ok)
	assert.Equal(t, "gsettings", name)

	_, _, ok = AppearanceQuery("windows")
	assert.False(t, ok)
}
