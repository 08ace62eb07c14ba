// Package docx converts DOCX documents to body-level HTML through a
// configurable style map: Word paragraph styles pick the wrapping tag,
// bold and italic runs become strong and em, and run styles can map to
// inline tags such as code. The output is plain enough to feed to
// htmlvalidate with a widened whitelist.
package docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// StyleMap maps Word style IDs to HTML tag names. Paragraph styles pick
// the element wrapping the whole paragraph (default p); run styles wrap
// the run's text inline.
type StyleMap map[string]string

// DefaultStyleMap returns the mapping used by the project's documents:
// the title and the four heading levels, plus a Code character style.
func DefaultStyleMap() StyleMap {
	return StyleMap{
		"Title":    "h1",
		"Heading1": "h1",
		"Heading2": "h2",
		"Heading3": "h3",
		"Heading4": "h4",
		"Code":     "code",
	}
}

var log = zap.NewNop()

// SetLogger installs a logger for the package. The default discards
// everything.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Convert reads a DOCX package and returns its HTML rendition, one
// paragraph-level element per line. Paragraphs with no text are
// dropped. A nil styles map means DefaultStyleMap.
func Convert(r io.ReaderAt, size int64, styles StyleMap) (string, error) {
	if styles == nil {
		styles = DefaultStyleMap()
	}
	doc, err := readDocument(r, size)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, p := range doc.Body.Paragraphs {
		content := renderRuns(p.Runs, styles)
		if strings.TrimSpace(content) == "" {
			continue
		}
		tag := "p"
		if t, ok := styles[p.Props.Style.Val]; ok {
			tag = t
		}
		lines = append(lines, fmt.Sprintf("<%s>%s</%s>", tag, content, tag))
	}
	return strings.Join(lines, "\n"), nil
}

// ConvertFile converts one DOCX file and writes <stem>.html into
// outputDir, returning the output path.
func ConvertFile(path, outputDir string, styles StyleMap) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	out, err := Convert(f, info.Size(), styles)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outputPath := filepath.Join(outputDir, stem+".html")
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return "", err
	}
	log.Info("converted document",
		zap.String("file", filepath.Base(path)),
		zap.String("output", outputPath))
	return outputPath, nil
}

// ConvertAll converts every .docx file in inputDir into outputDir.
func ConvertAll(inputDir, outputDir string, styles StyleMap) error {
	matches, err := filepath.Glob(filepath.Join(inputDir, "*.docx"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		if _, err := ConvertFile(path, outputDir, styles); err != nil {
			return err
		}
	}
	return nil
}

func renderRuns(runs []run, styles StyleMap) string {
	var b strings.Builder
	for _, r := range runs {
		text := r.text()
		if text == "" {
			continue
		}
		part := html.EscapeString(text)
		if tag, ok := styles[r.Props.Style.Val]; ok && r.Props.Style.Val != "" {
			part = wrapTag(part, tag)
		}
		if r.Props.Italic.enabled() {
			part = wrapTag(part, "em")
		}
		if r.Props.Bold.enabled() {
			part = wrapTag(part, "strong")
		}
		b.WriteString(part)
	}
	return b.String()
}

func wrapTag(s, tag string) string {
	return "<" + tag + ">" + s + "</" + tag + ">"
}
