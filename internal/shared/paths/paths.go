package paths

import "path/filepath"

// Fixed script locations, relative to the working directory
const (
	// Entry is the user script run after bootstrap
	Entry = "./done.js"

	// Modules contains the bootstrap modules
	Modules = "./src/modules"
)

// Bootstrap module file names, in run order
const (
	RequireModule = "require.js"
	ConsoleModule = "console.js"
	ColorsModule  = "colors.js"
)

// BootstrapModules returns the module file names in run order
func BootstrapModules() []string {
	return []string{RequireModule, ConsoleModule, ColorsModule}
}

// InDir joins each name onto dir
func InDir(dir string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = filepath.Join(dir, name)
	}
	return out
}
