package textfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/dstarostin/textkit/textfile"
)

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func encode1251(t *testing.T, s string) []byte {
	t.Helper()
	data, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return data
}

func TestDetectEncoding(t *testing.T) {
	utf8Path := writeBytes(t, "utf8.txt", []byte("привет\n"))
	enc, err := textfile.DetectEncoding(utf8Path)
	require.NoError(t, err)
	assert.Equal(t, textfile.UTF8, enc)

	bomPath := writeBytes(t, "bom.txt", append([]byte{0xef, 0xbb, 0xbf}, []byte("hello")...))
	enc, err = textfile.DetectEncoding(bomPath)
	require.NoError(t, err)
	assert.Equal(t, textfile.UTF8, enc)

	ansiPath := writeBytes(t, "ansi.txt", encode1251(t, "привет"))
	enc, err = textfile.DetectEncoding(ansiPath)
	require.NoError(t, err)
	assert.Equal(t, textfile.Windows1251, enc)
}

func TestReadText(t *testing.T) {
	path := writeBytes(t, "plain.txt", []byte("line one\nline two\n"))
	content, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", content)

	bomPath := writeBytes(t, "bom.txt", append([]byte{0xef, 0xbb, 0xbf}, []byte("after bom")...))
	content, err = textfile.ReadText(bomPath)
	require.NoError(t, err)
	assert.Equal(t, "after bom", content)

	ansiPath := writeBytes(t, "ansi.txt", encode1251(t, "старый файл"))
	content, err = textfile.ReadText(ansiPath)
	require.NoError(t, err)
	assert.Equal(t, "старый файл", content)
}

func TestReadText_MissingFile(t *testing.T) {
	_, err := textfile.ReadText(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadNonEmptyLines(t *testing.T) {
	path := writeBytes(t, "lines.txt", []byte("  one  \n\n   \ntwo\n\nthree\n"))
	lines, err := textfile.ReadNonEmptyLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, textfile.WriteText(path, "content", false))

	err := textfile.WriteText(path, "again", false)
	assert.ErrorIs(t, err, textfile.ErrExists)

	require.NoError(t, textfile.WriteText(path, "again", true))
	content, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "again", content)
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, textfile.WriteLines(path, []string{"a", "b"}, false))
	content, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", content)
}

func TestMoveLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "move.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0o644))

	// Move line 0 before line 3.
	require.NoError(t, textfile.MoveLine(path, 0, 3, ""))
	content, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "b\nc\na\nd\n", content)

	// Move the last line to the end is a no-op; to the front is not.
	require.NoError(t, textfile.MoveLine(path, 3, 0, ""))
	content, err = textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "d\nb\nc\na\n", content)
}

func TestMoveLine_EndOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "move.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))

	require.NoError(t, textfile.MoveLine(path, 0, textfile.EndOfFile, ""))
	content, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "b\nc\na\n", content)
}

func TestMoveLine_SeparateOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	require.NoError(t, textfile.MoveLine(path, 1, 0, out))
	content, err := textfile.ReadText(out)
	require.NoError(t, err)
	assert.Equal(t, "b\na\n", content)

	original, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", original)
}

func TestMoveLine_OutOfRange(t *testing.T) {
	path := writeBytes(t, "short.txt", []byte("only\n"))
	assert.Error(t, textfile.MoveLine(path, 5, 0, ""))
	assert.Error(t, textfile.MoveLine(path, 0, 7, ""))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", textfile.CollapseSpace("  a \t b \n c  "))
	assert.Equal(t, "", textfile.CollapseSpace("   "))
	assert.Equal(t, "word", textfile.CollapseSpace("word"))
}
