package htmlvalidate

import (
	"errors"
	"fmt"
)

// Code identifies the kind of conformance violation an [Error] reports.
type Code string

const (
	// CodeUnescapedAmpersand indicates an & with no terminating semicolon
	// anywhere after it.
	CodeUnescapedAmpersand Code = "unescaped-ampersand"
	// CodeInvalidEntity indicates an &...; sequence that is neither a
	// recognized named entity nor a decimal character reference.
	CodeInvalidEntity Code = "invalid-entity"
	// CodeDisallowedTag indicates an element outside the whitelist.
	CodeDisallowedTag Code = "disallowed-tag"
	// CodeMalformedList indicates a ul or ol with a non-li element child.
	CodeMalformedList Code = "malformed-list"
	// CodeMisplacedListItem indicates an li whose parent is not ul or ol.
	CodeMisplacedListItem Code = "misplaced-list-item"
	// CodeEmptyParagraph indicates a p element with no text content.
	CodeEmptyParagraph Code = "empty-paragraph"
	// CodeRootLevelText indicates bare text at the top level of the
	// document when the configuration forbids it.
	CodeRootLevelText Code = "root-level-text"
	// CodeUnclosedTag indicates an opening tag with no matching close.
	CodeUnclosedTag Code = "unclosed-tag"
)

// Error describes the first conformance violation found in a document.
// Fields beyond Code are populated when they apply: Tag is the
// offending tag or entity name, Parent the enclosing element for list
// placement errors, Offset the byte position in the input, and Snippet
// a short window of the input around the violation.
type Error struct {
	Code    Code
	Tag     string
	Parent  string
	Offset  int
	Snippet string
}

// Error formats the violation for display.
func (e *Error) Error() string {
	switch e.Code {
	case CodeUnescapedAmpersand:
		return fmt.Sprintf("text contains unescaped &: %q", e.Snippet)
	case CodeInvalidEntity:
		return fmt.Sprintf("invalid HTML entity &%s; in: %q", e.Tag, e.Snippet)
	case CodeDisallowedTag:
		return fmt.Sprintf("tag <%s> is not allowed", e.Tag)
	case CodeMalformedList:
		return fmt.Sprintf("<%s> can only contain <li> elements, found <%s>", e.Parent, e.Tag)
	case CodeMisplacedListItem:
		return fmt.Sprintf("<li> must be a direct child of <ul> or <ol>, found inside <%s>", e.Parent)
	case CodeEmptyParagraph:
		return "empty <p> tags are not allowed"
	case CodeRootLevelText:
		return fmt.Sprintf("text must be wrapped in a block element, found: %q", e.Snippet)
	case CodeUnclosedTag:
		return fmt.Sprintf("unclosed tag <%s> at offset %d: %q", e.Tag, e.Offset, e.Snippet)
	}
	return string(e.Code)
}

// AsError returns the typed validation error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
