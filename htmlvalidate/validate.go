package htmlvalidate

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parser turns raw HTML into a node tree. Implementations must be
// lenient: unterminated tags are auto-closed, never rejected. Any
// parser producing a golang.org/x/net/html node tree can be
// substituted; the default is html.Parse.
type Parser func(r io.Reader) (*html.Node, error)

// Options controls what HTML [Validate] considers conformant. The zero
// value (and nil) uses [DefaultAllowedTags], forbids root-level text,
// and parses with golang.org/x/net/html.
type Options struct {
	// AllowedTags is the element whitelist, lowercase tag names. nil
	// means DefaultAllowedTags; an empty non-nil slice allows no
	// content tags at all. Structural wrappers (html, head, body,
	// title) are always permitted.
	AllowedTags []string

	// AllowRootLevelText permits non-whitespace text nodes directly
	// under the document's top-level container.
	AllowRootLevelText bool

	// Parser overrides the lenient HTML parser building the node tree.
	Parser Parser
}

// DefaultAllowedTags returns the default element whitelist: paragraphs,
// lists, links, and basic inline formatting.
func DefaultAllowedTags() []string {
	return []string{"a", "b", "em", "i", "li", "ol", "p", "strong", "sub", "sup", "u", "ul"}
}

// Validate checks htmlStr against the document model and returns nil or
// the first violation found, always as an [*Error] (a parser failure
// from a substituted Parser is the one exception). The empty string is
// valid for every configuration.
//
// Checks run in a fixed order: ampersands and entities on the raw
// string, then tag whitelist, list structure, paragraphs, and
// root-level text on the parsed tree, and finally tag closure on the
// raw string. A document violating several rules reports the first one
// in that order.
func Validate(htmlStr string, opts *Options) error {
	if htmlStr == "" {
		return nil
	}
	if opts == nil {
		opts = &Options{}
	}

	if err := scanAmpersands(htmlStr); err != nil {
		return err
	}

	parse := opts.Parser
	if parse == nil {
		parse = html.Parse
	}
	root, err := parse(strings.NewReader(htmlStr))
	if err != nil {
		return err
	}
	doc := goquery.NewDocumentFromNode(root)

	tags := opts.AllowedTags
	if tags == nil {
		tags = DefaultAllowedTags()
	}
	if err := checkTagsAllowed(doc, sliceToSet(tags)); err != nil {
		return err
	}
	if err := checkListStructure(doc); err != nil {
		return err
	}
	if err := checkParagraphs(doc); err != nil {
		return err
	}
	if !opts.AllowRootLevelText {
		if err := checkRootLevelText(root); err != nil {
			return err
		}
	}
	return scanUnclosedTags(htmlStr)
}

func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[strings.ToLower(v)] = true
	}
	return m
}
