package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/done/internal/engine"
	"github.com/GriffinCanCode/done/internal/providers/filesystem"
)

func newContext(t *testing.T) (*engine.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	eng := engine.New(engine.Options{Stdout: &out})
	require.NoError(t, eng.Initialize())
	t.Cleanup(func() { eng.Shutdown() })

	c, err := eng.BuildContext()
	require.NoError(t, err)
	return c, &out
}

func writeModules(t *testing.T, sources map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range sources {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func TestDefaultModules(t *testing.T) {
	assert.Equal(t, []string{
		filepath.Join("src", "modules", "require.js"),
		filepath.Join("src", "modules", "console.js"),
		filepath.Join("src", "modules", "colors.js"),
	}, DefaultModules("./src/modules"))
}

func TestLoadRunsModulesInOrder(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"require.js": `var order = ["require"]; var greet = function () { return "hi" };`,
		"console.js": `order.push("console"); var shout = function () { return greet().toUpperCase() };`,
		"colors.js":  `order.push("colors");`,
		"entry.js":   `Done.core.print(order.join(",") + " " + greet() + " " + shout())`,
	})

	c, out := newContext(t)
	loader := New(c, DefaultModules(dir), nil)

	require.NoError(t, loader.Load())
	require.NoError(t, loader.Exec(filepath.Join(dir, "entry.js")))

	assert.Equal(t, "require,console,colors hi HI", out.String())
}

func TestLoadStopsOnRuntimeFailure(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"require.js": `Done.core.print("1");`,
		"console.js": `throw new Error("console broke");`,
		"colors.js":  `Done.core.print("3");`,
	})

	c, out := newContext(t)
	err := New(c, DefaultModules(dir), nil).Load()

	var diag *engine.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, engine.StageRun, diag.Stage)
	assert.Contains(t, diag.Text, "console broke")
	assert.Contains(t, err.Error(), "bootstrap module 2")
	assert.Equal(t, "1", out.String())
}

func TestLoadStopsOnCompileFailure(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"require.js": `var = ;`,
		"console.js": `Done.core.print("2");`,
		"colors.js":  `Done.core.print("3");`,
	})

	c, out := newContext(t)
	err := New(c, DefaultModules(dir), nil).Load()

	var diag *engine.Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, engine.StageCompile, diag.Stage)
	assert.Empty(t, out.String())
}

func TestLoadMissingModule(t *testing.T) {
	dir := writeModules(t, map[string]string{
		"require.js": `1`,
	})

	c, _ := newContext(t)
	err := New(c, DefaultModules(dir), nil).Load()

	var ioErr *filesystem.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, filepath.Join(dir, "console.js"), ioErr.Path)
}

type fakeRunner struct {
	calls      []string
	compileErr error
}

func (f *fakeRunner) Compile(path string) (*engine.Unit, error) {
	f.calls = append(f.calls, "compile "+path)
	if f.compileErr != nil {
		return nil, f.compileErr
	}
	return &engine.Unit{Name: filepath.Base(path), Path: path}, nil
}

func (f *fakeRunner) Run(u *engine.Unit) (goja.Value, error) {
	f.calls = append(f.calls, "run "+u.Path)
	return goja.Undefined(), nil
}

func TestExecCompilesThenRuns(t *testing.T) {
	runner := &fakeRunner{}
	loader := New(runner, []string{"a.js", "b.js"}, nil)

	require.NoError(t, loader.Load())
	assert.Equal(t, []string{"compile a.js", "run a.js", "compile b.js", "run b.js"}, runner.calls)
}

func TestExecSkipsRunAfterCompileError(t *testing.T) {
	runner := &fakeRunner{compileErr: &engine.Diagnostic{Stage: engine.StageCompile, Path: "a.js", Text: "SyntaxError"}}
	loader := New(runner, []string{"a.js", "b.js"}, nil)

	assert.Error(t, loader.Load())
	assert.Equal(t, []string{"compile a.js"}, runner.calls)
}

func TestModulesIsACopy(t *testing.T) {
	modules := []string{"a.js"}
	loader := New(&fakeRunner{}, modules, nil)

	modules[0] = "changed.js"
	got := loader.Modules()
	got[0] = "also-changed.js"

	assert.Equal(t, []string{"a.js"}, loader.Modules())
}
