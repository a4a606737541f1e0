package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "input.txt", "first line\n\n  \nsecond line\n   padded   \n")

	inputs, err := readLines(path)
	require.NoError(t, err)
	require.Len(t, inputs, 3)

	assert.Equal(t, input{file: path, line: 1, text: "first line"}, inputs[0])
	assert.Equal(t, input{file: path, line: 4, text: "second line"}, inputs[1])
	assert.Equal(t, input{file: path, line: 5, text: "padded"}, inputs[2])
}

func TestReadLines_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "")

	inputs, err := readLines(path)
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestReadLines_MissingFile(t *testing.T) {
	_, err := readLines("/nonexistent/input.txt")
	require.Error(t, err)
}

func TestReadInputs_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "hello\n")

	inputs, failed, err := readInputs([]string{good, "/nonexistent/bad.txt"}, true)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "hello", inputs[0].text)
	assert.Equal(t, []string{"/nonexistent/bad.txt"}, failed)
}

func TestReadInputs_AbortsOnError(t *testing.T) {
	_, _, err := readInputs([]string{"/nonexistent/bad.txt"}, false)
	require.Error(t, err)
}
