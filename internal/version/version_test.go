package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.Contains(t, info, "frameprof")
	assert.Contains(t, info, Version)
	assert.Contains(t, info, "Commit:")
	assert.Contains(t, info, "OS/Arch:")
}

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}
