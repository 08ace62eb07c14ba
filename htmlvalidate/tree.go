package htmlvalidate

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// structuralTags are the wrapper elements a lenient parser synthesizes
// around any fragment (or that wrap a whole document). They pass the
// whitelist check regardless of configuration, since rejecting them
// would reject every parsed document.
var structuralTags = map[string]bool{
	"html":  true,
	"head":  true,
	"body":  true,
	"title": true,
}

// checkTagsAllowed fails on the first element whose name is neither
// structural nor in the whitelist. Attributes are not inspected.
func checkTagsAllowed(doc *goquery.Document, allowed map[string]bool) error {
	var verr *Error
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := strings.ToLower(goquery.NodeName(sel))
		if structuralTags[name] || allowed[name] {
			return true
		}
		verr = &Error{Code: CodeDisallowedTag, Tag: name}
		return false
	})
	if verr != nil {
		return verr
	}
	return nil
}

// checkListStructure enforces both list rules: element children of ul
// and ol must be li, and every li must sit directly under a ul or ol.
// Text children of a list are left to the other checks.
func checkListStructure(doc *goquery.Document) error {
	var verr *Error
	doc.Find("ul, ol").EachWithBreak(func(_ int, list *goquery.Selection) bool {
		listName := goquery.NodeName(list)
		list.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			if name := goquery.NodeName(child); name != "li" {
				verr = &Error{Code: CodeMalformedList, Parent: listName, Tag: name}
				return false
			}
			return true
		})
		return verr == nil
	})
	if verr != nil {
		return verr
	}
	doc.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		parent := goquery.NodeName(li.Parent())
		if parent != "ul" && parent != "ol" {
			verr = &Error{Code: CodeMisplacedListItem, Parent: parent}
			return false
		}
		return true
	})
	if verr != nil {
		return verr
	}
	return nil
}

// checkParagraphs fails on the first p whose trimmed text content is
// empty. Nested paragraphs need no rule of their own: the lenient
// parser splits <p>X<p>Y</p></p> into siblings ending in an empty p,
// so this check rejects nesting transitively.
func checkParagraphs(doc *goquery.Document) error {
	var verr *Error
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if strings.TrimSpace(p.Text()) == "" {
			verr = &Error{Code: CodeEmptyParagraph}
			return false
		}
		return true
	})
	if verr != nil {
		return verr
	}
	return nil
}

// checkRootLevelText fails on the first non-whitespace text node that
// is a direct child of the effective top-level container. The parser
// wraps bare content in an implicit body; the check inspects that
// container, not the document root.
func checkRootLevelText(root *html.Node) error {
	container := findBody(root)
	if container == nil {
		container = root
	}
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return &Error{
				Code:    CodeRootLevelText,
				Snippet: clip(c.Data, 0, entitySnippetLen),
			}
		}
	}
	return nil
}

func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}
