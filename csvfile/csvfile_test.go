package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/dstarostin/textkit/csvfile"
	"github.com/dstarostin/textkit/textfile"
)

func TestReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,en\n1,foo\n2,bar\n"), 0o644))

	rows, err := csvfile.ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "en"}, {"1", "foo"}, {"2", "bar"}}, rows)
}

func TestReadRows_Windows1251(t *testing.T) {
	encoded, err := charmap.Windows1251.NewEncoder().Bytes([]byte("id,ru\n1,слово\n"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "legacy.csv")
	require.NoError(t, os.WriteFile(path, encoded, 0o644))

	rows, err := csvfile.ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "ru"}, {"1", "слово"}}, rows)
}

func TestReadDicts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,en\n1,foo\n2\n"), 0o644))

	dicts, err := csvfile.ReadDicts(path)
	require.NoError(t, err)
	require.Len(t, dicts, 2)
	assert.Equal(t, map[string]string{"id": "1", "en": "foo"}, dicts[0])
	// Short record: missing columns are absent, not empty.
	assert.Equal(t, map[string]string{"id": "2"}, dicts[1])
}

func TestWriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{{"id", "en"}, {"1", "foo"}}
	require.NoError(t, csvfile.WriteRows(path, rows, false, ','))

	err := csvfile.WriteRows(path, rows, false, ',')
	assert.ErrorIs(t, err, textfile.ErrExists)

	back, err := csvfile.ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestWriteRows_Semicolon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, csvfile.WriteRows(path, [][]string{{"a", "b"}}, true, ';'))

	content, err := textfile.ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n", content)
}
