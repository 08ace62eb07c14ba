package htmlvalidate

import "strings"

const (
	// entitySnippetLen is the window reported for ampersand and entity
	// errors, counted from the offending &.
	entitySnippetLen = 50
	// unclosedWindowLen is the window reported for unclosed-tag errors,
	// centered on the tag's opening <.
	unclosedWindowLen = 40
)

// entityNames are the named entities the document model accepts.
var entityNames = map[string]bool{
	"amp":  true,
	"lt":   true,
	"gt":   true,
	"quot": true,
	"apos": true,
}

// selfClosingTags never take a matching end tag.
var selfClosingTags = map[string]bool{
	"br":    true,
	"img":   true,
	"hr":    true,
	"input": true,
	"meta":  true,
	"link":  true,
}

// scanAmpersands walks s once and fails on the first & that is not part
// of a recognized entity. The terminating semicolon is searched for
// strictly after the &; a semicolon earlier in the string never counts.
func scanAmpersands(s string) error {
	pos := 0
	for pos < len(s) {
		if s[pos] != '&' {
			pos++
			continue
		}
		rel := strings.IndexByte(s[pos+1:], ';')
		if rel < 0 {
			return &Error{
				Code:    CodeUnescapedAmpersand,
				Offset:  pos,
				Snippet: clip(s, pos, entitySnippetLen),
			}
		}
		semi := pos + 1 + rel
		name := s[pos+1 : semi]
		if !validEntityName(name) {
			return &Error{
				Code:    CodeInvalidEntity,
				Tag:     name,
				Offset:  pos,
				Snippet: clip(s, pos, entitySnippetLen),
			}
		}
		pos = semi + 1
	}
	return nil
}

// validEntityName accepts the named entities and decimal character
// references of the form #123.
func validEntityName(name string) bool {
	if entityNames[name] {
		return true
	}
	if len(name) < 2 || name[0] != '#' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// scanUnclosedTags walks the raw string and fails on the first opening
// tag without a matching close. A lenient tree parser auto-closes such
// tags, so the tree checks alone would never see them.
func scanUnclosedTags(s string) error {
	lower := strings.ToLower(s)
	pos := 0
	for pos < len(lower) {
		rel := strings.IndexByte(lower[pos:], '<')
		if rel < 0 {
			return nil
		}
		start := pos + rel
		i := start + 1

		// Doctype and comment markers run to the next >.
		if i < len(lower) && lower[i] == '!' {
			gt := strings.IndexByte(lower[i:], '>')
			if gt < 0 {
				return unclosedError(s, "!", start)
			}
			pos = i + gt + 1
			continue
		}

		closing := false
		if i < len(lower) && lower[i] == '/' {
			closing = true
			i++
		}
		j := i
		for j < len(lower) && isTagNameByte(lower[j]) {
			j++
		}
		if j == i {
			// A bare < with no tag name is plain text; closure is not
			// this scanner's concern.
			pos = start + 1
			continue
		}
		name := lower[i:j]

		gt := strings.IndexByte(lower[j:], '>')
		if gt < 0 {
			return unclosedError(s, name, start)
		}
		end := j + gt + 1

		selfClosedSyntax := end-2 >= j && lower[end-2] == '/'
		if closing || selfClosingTags[name] || selfClosedSyntax {
			pos = end
			continue
		}
		if err := matchClosingTag(lower, s, name, start, end); err != nil {
			return err
		}
		pos = end
	}
	return nil
}

// matchClosingTag runs a balanced-nesting search for the close of the
// tag named name whose opening < sits at start, beginning just past its
// >. Depth starts at 1; a further <name before the next </name nests
// one deeper, each </name closes one level. Whichever token occurs at
// the lower offset is processed first.
func matchClosingTag(lower, orig, name string, start, from int) error {
	open := "<" + name
	clos := "</" + name
	depth := 1
	pos := from
	for depth > 0 {
		o := indexTagToken(lower, open, pos)
		c := indexTagToken(lower, clos, pos)
		if c < 0 {
			return unclosedError(orig, name, start)
		}
		if o >= 0 && o < c {
			depth++
			pos = o + len(open)
		} else {
			depth--
			pos = c + len(clos)
		}
	}
	return nil
}

// indexTagToken finds tok at or after pos, skipping occurrences where
// tok is a prefix of a longer tag name (so "<li" does not match
// "<link"). Returns -1 when absent.
func indexTagToken(s, tok string, pos int) int {
	for pos <= len(s) {
		rel := strings.Index(s[pos:], tok)
		if rel < 0 {
			return -1
		}
		abs := pos + rel
		next := abs + len(tok)
		if next >= len(s) || !isTagNameByte(s[next]) {
			return abs
		}
		pos = abs + 1
	}
	return -1
}

func unclosedError(s, name string, start int) error {
	return &Error{
		Code:    CodeUnclosedTag,
		Tag:     name,
		Offset:  start,
		Snippet: clipCentered(s, start, unclosedWindowLen),
	}
}

func isTagNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

// clip returns up to n bytes of s starting at pos.
func clip(s string, pos, n int) string {
	end := pos + n
	if end > len(s) {
		end = len(s)
	}
	return s[pos:end]
}

// clipCentered returns up to n bytes of s centered on pos.
func clipCentered(s string, pos, n int) string {
	lo := pos - n/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + n
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}
