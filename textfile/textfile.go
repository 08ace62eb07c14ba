// Package textfile reads and writes the plain-text files this project
// deals with. Text files are UTF-8 (optionally BOM-prefixed) or legacy
// Windows-1251; nothing else is supported, so encoding detection only
// decides between those two.
package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies one of the two encodings a text file may use.
type Encoding string

const (
	UTF8        Encoding = "utf-8"
	Windows1251 Encoding = "windows-1251"
)

// EndOfFile makes MoveLine append the cut line instead of inserting it
// before a given line.
const EndOfFile = -1

// ErrExists is wrapped by write helpers refusing to clobber a file.
var ErrExists = errors.New("file already exists")

var log = zap.NewNop()

// SetLogger installs a logger for the package. The default discards
// everything.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

var spaceRun = regexp.MustCompile(`\s+`)

// DetectEncoding reports whether the file is UTF-8 or Windows-1251.
// Anything that is not valid UTF-8 is taken to be the legacy encoding.
func DetectEncoding(path string) (Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
		return UTF8, nil
	}
	return Windows1251, nil
}

// ReadText returns the whole file decoded to a Go string, with any
// UTF-8 BOM stripped.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	log.Info("file is not valid UTF-8, decoding as Windows-1251",
		zap.String("file", path))
	decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s as Windows-1251: %w", path, err)
	}
	return string(decoded), nil
}

// ReadNonEmptyLines returns the file's lines, trimmed, with empty lines
// dropped.
func ReadNonEmptyLines(path string) ([]string, error) {
	content, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// WriteText writes content to path in UTF-8. Unless overwrite is set,
// an existing file is an error.
func WriteText(path, content string, overwrite bool) error {
	if err := checkClobber(path, overwrite); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	log.Info("wrote text file",
		zap.String("file", path), zap.Int("characters", len(content)))
	return nil
}

// WriteLines writes lines to path in UTF-8, one newline after each.
func WriteLines(path string, lines []string, overwrite bool) error {
	if err := checkClobber(path, overwrite); err != nil {
		return err
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return err
	}
	log.Info("wrote text file",
		zap.String("file", path), zap.Int("lines", len(lines)))
	return nil
}

// MoveLine cuts line cut (zero-based) from the file at path and
// re-inserts it before line insertBefore, or at the end when
// insertBefore is EndOfFile. The result is written to output, or back
// to path when output is empty.
func MoveLine(path string, cut, insertBefore int, output string) error {
	content, err := ReadText(path)
	if err != nil {
		return err
	}
	trailingNewline := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	if cut < 0 || cut >= len(lines) {
		return fmt.Errorf("line %d to cut is out of range for file %s with %d lines", cut, path, len(lines))
	}
	if insertBefore == EndOfFile {
		insertBefore = len(lines)
	}
	if insertBefore < 0 || insertBefore > len(lines) {
		return fmt.Errorf("line %d to insert before is out of range for file %s with %d lines", insertBefore, path, len(lines))
	}

	moved := lines[cut]
	lines = append(lines[:cut], lines[cut+1:]...)
	if insertBefore > cut {
		insertBefore--
	}
	lines = append(lines[:insertBefore], append([]string{moved}, lines[insertBefore:]...)...)

	result := strings.Join(lines, "\n")
	if trailingNewline {
		result += "\n"
	}
	if output == "" {
		output = path
	}
	return os.WriteFile(output, []byte(result), 0o644)
}

// CollapseSpace trims s and replaces every inner whitespace run with a
// single space.
func CollapseSpace(s string) string {
	return spaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

func checkClobber(path string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	}
	return nil
}
