package converter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/refmt/casing"
	"github.com/erraggy/refmt/refmterrors"
)

// recordingReporter collects notices for assertions.
type recordingReporter struct {
	wouldConvert []string
	converted    []string
	noChanges    []string
	missing      []string
	failed       []string
}

func (r *recordingReporter) WouldConvert(path string) { r.wouldConvert = append(r.wouldConvert, path) }
func (r *recordingReporter) Converted(path string)    { r.converted = append(r.converted, path) }
func (r *recordingReporter) NoChanges(path string)    { r.noChanges = append(r.noChanges, path) }
func (r *recordingReporter) PathMissing(path string)  { r.missing = append(r.missing, path) }
func (r *recordingReporter) ProcessError(path string, err error) {
	r.failed = append(r.failed, path)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newTestConverter(t *testing.T, cfg Config) (*Converter, *recordingReporter) {
	t.Helper()
	c, err := New(cfg)
	require.NoError(t, err)
	rep := &recordingReporter{}
	c.Reporter = rep
	return c, rep
}

func TestProcessFileRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	writeFile(t, path, "myVariable = getUserName()\n")

	c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
	outcome, err := c.ProcessFile(path, dir)
	require.NoError(t, err)

	assert.Equal(t, OutcomeConverted, outcome)
	assert.Equal(t, "my_variable = get_user_name()\n", readFile(t, path))
	assert.Equal(t, []string{path}, rep.converted)
}

func TestProcessFilePreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.py")
	writeFile(t, path, "myVariable = 1\n")
	require.NoError(t, os.Chmod(path, 0o640))

	c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
	_, err := c.ProcessFile(path, dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestProcessFileDryRunLeavesDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	const original = "myVariable = getUserName()\n"
	writeFile(t, path, original)

	c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, DryRun: true})
	outcome, err := c.ProcessFile(path, dir)
	require.NoError(t, err)

	assert.Equal(t, OutcomeWouldConvert, outcome)
	assert.Equal(t, original, readFile(t, path), "dry-run must not modify the file")
	assert.Equal(t, []string{path}, rep.wouldConvert)
	assert.Empty(t, rep.converted)
}

func TestProcessFileUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	writeFile(t, path, "already_snake = 1\n")

	t.Run("reported outside dry-run", func(t *testing.T) {
		c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
		outcome, err := c.ProcessFile(path, dir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeUnchanged, outcome)
		assert.Equal(t, []string{path}, rep.noChanges)
	})

	t.Run("silent in dry-run", func(t *testing.T) {
		c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, DryRun: true})
		outcome, err := c.ProcessFile(path, dir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeUnchanged, outcome)
		assert.Empty(t, rep.noChanges)
	})
}

func TestProcessFileFilters(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  Config
		file string
	}{
		{
			name: "extension not in list",
			cfg:  Config{From: casing.StyleCamel, To: casing.StyleSnake},
			file: "notes.log",
		},
		{
			name: "no extension",
			cfg:  Config{From: casing.StyleCamel, To: casing.StyleSnake},
			file: "Makefile",
		},
		{
			name: "glob mismatch",
			cfg:  Config{From: casing.StyleCamel, To: casing.StyleSnake, Glob: "test_*.py"},
			file: "main.py",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, "myVariable = 1\n")

			c, rep := newTestConverter(t, tt.cfg)
			outcome, err := c.ProcessFile(path, dir)
			require.NoError(t, err)

			assert.Equal(t, OutcomeSkipped, outcome)
			assert.Equal(t, "myVariable = 1\n", readFile(t, path))
			assert.Empty(t, rep.converted)
		})
	}
}

func TestProcessFileGlobMatching(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "src", "test_util.py")
	writeFile(t, nested, "myVariable = 1\n")

	t.Run("bare filename", func(t *testing.T) {
		c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, Glob: "test_*.py"})
		outcome, err := c.ProcessFile(nested, dir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeConverted, outcome)
	})

	t.Run("relative path", func(t *testing.T) {
		writeFile(t, nested, "myVariable = 1\n")
		c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, Glob: "src/*.py"})
		outcome, err := c.ProcessFile(nested, dir)
		require.NoError(t, err)
		assert.Equal(t, OutcomeConverted, outcome)
	})
}

func TestProcessFileInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.py")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'a'}, 0o644))

	c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
	outcome, err := c.ProcessFile(path, dir)

	assert.Equal(t, OutcomeError, outcome)
	require.Error(t, err)
	assert.ErrorIs(t, err, refmterrors.ErrNotUTF8)
	assert.ErrorIs(t, err, refmterrors.ErrFile)
}

func TestProcessTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "myVariable = 1\n")
	writeFile(t, filepath.Join(dir, "sub", "b.py"), "getUserName()\n")
	writeFile(t, filepath.Join(dir, "sub", "c.log"), "myVariable = 1\n")
	writeFile(t, filepath.Join(dir, "plain.py"), "nothing to do\n")

	c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, Recursive: true})
	result, err := c.Process(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesScanned, "log file filtered out")
	assert.Equal(t, 2, result.FilesChanged)
	assert.Equal(t, 0, result.ErrorCount)
	assert.True(t, result.HasChanges())
	assert.False(t, result.HasErrors())

	assert.Equal(t, "my_variable = 1\n", readFile(t, filepath.Join(dir, "a.py")))
	assert.Equal(t, "get_user_name()\n", readFile(t, filepath.Join(dir, "sub", "b.py")))
	assert.Equal(t, "myVariable = 1\n", readFile(t, filepath.Join(dir, "sub", "c.log")))
	assert.Len(t, rep.converted, 2)
	assert.Len(t, rep.noChanges, 1)
}

func TestProcessNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.py"), "myVariable = 1\n")
	writeFile(t, filepath.Join(dir, "sub", "nested.py"), "myVariable = 1\n")

	c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
	result, err := c.Process(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, "my_variable = 1\n", readFile(t, filepath.Join(dir, "top.py")))
	assert.Equal(t, "myVariable = 1\n", readFile(t, filepath.Join(dir, "sub", "nested.py")))
}

func TestProcessRootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.py")
	writeFile(t, path, "myVariable = 1\n")

	// Recursive flag is irrelevant for a file root.
	c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
	result, err := c.Process(path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 1, result.FilesChanged)
	assert.Equal(t, "my_variable = 1\n", readFile(t, path))
}

func TestProcessMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake})
	result, err := c.Process(missing)
	require.NoError(t, err, "missing root is a diagnostic, not an error")

	assert.Equal(t, 0, result.FilesScanned)
	assert.Equal(t, []string{missing}, rep.missing)
}

func TestProcessContinuesPastFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "myVariable = 1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.py"), []byte{0xff, 0xfe}, 0o644))
	writeFile(t, filepath.Join(dir, "z.py"), "getUserName()\n")

	c, rep := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, Recursive: true})
	result, err := c.Process(dir)
	require.NoError(t, err, "per-file errors must not abort the run")

	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 2, result.FilesChanged)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, []string{filepath.Join(dir, "bad.py")}, rep.failed)
	assert.Equal(t, "my_variable = 1\n", readFile(t, filepath.Join(dir, "a.py")))
	assert.Equal(t, "get_user_name()\n", readFile(t, filepath.Join(dir, "z.py")))
}

func TestProcessDryRunWholeTree(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		filepath.Join(dir, "a.py"):        "myVariable = 1\n",
		filepath.Join(dir, "sub", "b.py"): "getUserName()\n",
		filepath.Join(dir, "sub", "c.py"): "no_changes_here\n",
	}
	for path, content := range files {
		writeFile(t, path, content)
	}

	c, _ := newTestConverter(t, Config{From: casing.StyleCamel, To: casing.StyleSnake, Recursive: true, DryRun: true})
	result, err := c.Process(dir)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.FilesChanged)
	for path, content := range files {
		assert.Equal(t, content, readFile(t, path), "dry-run must leave %s untouched", path)
	}
}
