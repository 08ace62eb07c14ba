// Package datafile reads structured data files — JSON, TOML, and YAML —
// into generic maps and slices, with a stricter YAML check layered on
// top of the decoder: duplicate top-level mapping keys are rejected
// instead of silently keeping the last value.
package datafile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/naoina/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformed is wrapped by readers when a file decodes to nothing
	// usable (syntax errors, empty documents, scalar top level).
	ErrMalformed = errors.New("malformed data")
	// ErrUnsupportedType is wrapped when the extension is not one of
	// .json, .toml, .yaml, .yml.
	ErrUnsupportedType = errors.New("unsupported file type")
)

var log = zap.NewNop()

// SetLogger installs a logger for the package. The default discards
// everything.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// topLevelKey matches a top-level mapping key: an optional list dash,
// then anything that is not a space or dash (so indented lower-level
// keys do not match), then a colon.
var topLevelKey = regexp.MustCompile(`^(- )?([^\s-]+)\s?:.*`)

// Read decodes path by extension and returns the generic result, which
// is guaranteed to be a non-empty map[string]any or []any. Anything
// else wraps ErrMalformed; an unknown extension wraps
// ErrUnsupportedType; a missing file wraps fs.ErrNotExist.
func Read(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot read JSON, TOML or YAML from non-existent file %s: %w", path, err)
		}
		return nil, err
	}

	var decoded any
	switch ext := strings.TrimPrefix(filepath.Ext(path), "."); ext {
	case "json":
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, malformed(path)
		}
	case "toml":
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, malformed(path)
		}
		decoded = table
	case "yaml", "yml":
		if err := CheckYAML(path); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, malformed(path)
		}
	default:
		return nil, fmt.Errorf("%w: file %s cannot be read", ErrUnsupportedType, path)
	}

	switch v := decoded.(type) {
	case map[string]any:
		if len(v) == 0 {
			return nil, malformed(path)
		}
	case []any:
		if len(v) == 0 {
			return nil, malformed(path)
		}
	default:
		return nil, malformed(path)
	}
	return decoded, nil
}

// CheckYAML reads the file and reports problems a plain decode would
// hide: duplicate top-level mapping keys (the decoder keeps the last
// one it sees), syntax errors, and documents that are not a mapping or
// sequence.
func CheckYAML(path string) error {
	log.Info("checking YAML file", zap.String("file", filepath.Base(path)))

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, line := range strings.Split(string(data), "\n") {
		if m := topLevelKey.FindStringSubmatch(line); m != nil {
			counts[m[2]]++
		}
	}
	for key, n := range counts {
		if n > 1 {
			return fmt.Errorf("%w: file %s contains more than one dictionary key %q at the top level", ErrMalformed, path, key)
		}
	}

	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		log.Info("YAML parser error", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("%w: error reading YAML from file %s", ErrMalformed, path)
	}
	switch decoded.(type) {
	case map[string]any, []any:
		return nil
	}
	return malformed(path)
}

func malformed(path string) error {
	return fmt.Errorf("%w: could not read file %s", ErrMalformed, path)
}
