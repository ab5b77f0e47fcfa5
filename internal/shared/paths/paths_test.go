package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBootstrapModulesOrder(t *testing.T) {
	assert.Equal(t, []string{"require.js", "console.js", "colors.js"}, BootstrapModules())
}

func TestInDir(t *testing.T) {
	got := InDir(Modules, BootstrapModules())

	assert.Equal(t, []string{
		filepath.Join("src", "modules", "require.js"),
		filepath.Join("src", "modules", "console.js"),
		filepath.Join("src", "modules", "colors.js"),
	}, got)
	assert.Empty(t, InDir("x", nil))
}
