package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, "v1.2.0", Info{Version: "v1.2.0", Commit: "abcdef0123"}.Short())
	assert.Equal(t, "dev-abcdef0", Info{Version: "dev", Commit: "abcdef0123"}.Short())
	assert.Equal(t, "dev", Info{Version: "dev", Commit: "unknown"}.Short())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
