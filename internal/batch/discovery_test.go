package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDiscoverTextFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", "hello\n")

	files, err := discoverTextFiles([]string{path}, false, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverTextFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "x")
	b := writeFile(t, dir, "b.txt", "y")

	files, err := discoverTextFiles([]string{dir}, false, []string{"*.txt"}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files)
}

func TestDiscoverTextFiles_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.txt", "x")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o750))
	writeFile(t, sub, "nested.txt", "y")

	files, err := discoverTextFiles([]string{dir}, false, []string{"*.txt"}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "top.txt", filepath.Base(files[0]))
}

func TestDiscoverTextFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.txt", "x")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o750))
	writeFile(t, sub, "nested.txt", "y")

	files, err := discoverTextFiles([]string{dir}, true, []string{"*.txt"}, nil)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestDiscoverTextFiles_ExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "keep.txt", "x")
	writeFile(t, dir, "skip.txt", "y")

	files, err := discoverTextFiles([]string{dir}, false, []string{"*.txt"}, []string{"skip*"})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverTextFiles_NonExistent(t *testing.T) {
	_, err := discoverTextFiles([]string{"/nonexistent/input.txt"}, false, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access")
}

func TestShouldIncludeFile(t *testing.T) {
	assert.True(t, shouldIncludeFile("a.txt", nil, nil))
	assert.True(t, shouldIncludeFile("a.txt", []string{"*.txt"}, nil))
	assert.False(t, shouldIncludeFile("a.csv", []string{"*.txt"}, nil))
	assert.False(t, shouldIncludeFile("a.txt", []string{"*.txt"}, []string{"a.*"}))
}
