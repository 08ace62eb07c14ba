// Package csvfile reads and writes CSV files. Reading goes through the
// textfile encoding detection, so legacy Windows-1251 exports decode
// correctly before the CSV parser sees them.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dstarostin/textkit/textfile"
)

var log = zap.NewNop()

// SetLogger installs a logger for the package. The default discards
// everything.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// ReadRows returns every record in the file. Records may have varying
// field counts.
func ReadRows(path string) ([][]string, error) {
	content, err := textfile.ReadText(path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV from %s: %w", path, err)
	}
	return rows, nil
}

// ReadDicts treats the first record as a header and returns each
// following record as a column-name-to-value map. Short records leave
// the trailing columns out of their map.
func ReadDicts(path string) ([]map[string]string, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	dicts := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				d[name] = row[i]
			}
		}
		dicts = append(dicts, d)
	}
	return dicts, nil
}

// WriteRows writes rows to path in UTF-8. A zero comma means the
// default separator. Unless overwrite is set, an existing file is an
// error.
func WriteRows(path string, rows [][]string, overwrite bool, comma rune) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", textfile.ErrExists, path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if comma != 0 {
		w.Comma = comma
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write CSV to %s: %w", path, err)
	}
	log.Info("wrote CSV file", zap.String("file", path), zap.Int("rows", len(rows)))
	return nil
}
