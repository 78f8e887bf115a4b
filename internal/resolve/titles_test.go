// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadTitles_SkipsBlankLines(t *testing.T) {
	path := writeTempFile(t, "titles.txt", []byte(
		"The structure of scientific revolutions\n"+
			"\n"+
			"   \n"+
			"  Attention Is All You Need  \n"+
			"\n"))

	titles, err := ReadTitles(path, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"The structure of scientific revolutions",
		"Attention Is All You Need",
	}, titles)
}

func TestReadTitles_EmptyEncodingDefaultsToUTF8(t *testing.T) {
	path := writeTempFile(t, "titles.txt", []byte("Ultrafast spin dynamics\n"))

	titles, err := ReadTitles(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ultrafast spin dynamics"}, titles)
}

func TestReadTitles_DecodesLatin1(t *testing.T) {
	// "Métaux" in ISO-8859-1: é is the single byte 0xE9.
	path := writeTempFile(t, "titles.txt", []byte{'M', 0xE9, 't', 'a', 'u', 'x', '\n'})

	titles, err := ReadTitles(path, "ISO-8859-1")
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "Métaux", titles[0])
}

func TestReadTitles_UnknownEncoding(t *testing.T) {
	path := writeTempFile(t, "titles.txt", []byte("anything\n"))

	_, err := ReadTitles(path, "no-such-charset")
	assert.Error(t, err)
}

func TestReadTitles_MissingFile(t *testing.T) {
	_, err := ReadTitles(filepath.Join(t.TempDir(), "missing.txt"), "utf-8")
	assert.Error(t, err)
}
