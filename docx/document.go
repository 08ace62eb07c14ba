package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// The subset of the WordprocessingML document part this converter
// needs: paragraphs, their style, and their runs with bold/italic and
// run-style properties. Field tags match by local name, so the w:
// namespace prefix is irrelevant.

type document struct {
	Body docBody `xml:"body"`
}

type docBody struct {
	Paragraphs []paragraph `xml:"p"`
}

type paragraph struct {
	Props paragraphProps `xml:"pPr"`
	Runs  []run          `xml:"r"`
}

type paragraphProps struct {
	Style styleRef `xml:"pStyle"`
}

type styleRef struct {
	Val string `xml:"val,attr"`
}

type run struct {
	Props runProps  `xml:"rPr"`
	Texts []runText `xml:"t"`
}

type runProps struct {
	Bold   *toggle  `xml:"b"`
	Italic *toggle  `xml:"i"`
	Style  styleRef `xml:"rStyle"`
}

type runText struct {
	Value string `xml:",chardata"`
}

// toggle models WordprocessingML on/off properties, where presence
// means on unless the val attribute turns it off.
type toggle struct {
	Val string `xml:"val,attr"`
}

func (t *toggle) enabled() bool {
	if t == nil {
		return false
	}
	switch strings.ToLower(t.Val) {
	case "", "1", "true", "on":
		return true
	}
	return false
}

func (r run) text() string {
	var b strings.Builder
	for _, t := range r.Texts {
		b.WriteString(t.Value)
	}
	return b.String()
}

// readDocument unzips the package and decodes word/document.xml.
func readDocument(r io.ReaderAt, size int64) (*document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open DOCX package: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		var doc document
		if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode word/document.xml: %w", err)
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("open DOCX package: word/document.xml not found")
}
