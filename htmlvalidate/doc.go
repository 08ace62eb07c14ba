// Package htmlvalidate checks HTML fragments against a restrictive,
// whitelist-based document model and reports the first violation found
// as a typed error.
//
// # Overview
//
// htmlvalidate runs two cooperating passes over the same input string:
//
//   - A raw character scan that catches unescaped ampersands, malformed
//     entities, and unclosed tags. These defects have to be caught on
//     the raw text because a lenient tree parser silently repairs them.
//   - A tree pass over the parsed node structure (built with the
//     golang.org/x/net/html parser by default) that enforces the tag
//     whitelist, list nesting rules, paragraph rules, and root-level
//     text placement.
//
// The passes run in a fixed order and validation stops at the first
// violation; [Validate] never collects more than one error per call.
//
// # Options
//
// An [Options] value controls:
//   - Which element tags are allowed ([Options.AllowedTags])
//   - Whether bare text may appear at the top level ([Options.AllowRootLevelText])
//   - Which lenient parser builds the node tree ([Options.Parser])
//
// Passing nil uses [DefaultAllowedTags], forbids root-level text, and
// parses with golang.org/x/net/html.
//
// # Errors
//
// Every violation is reported as an [*Error] carrying a [Code] plus the
// offending tag name, byte offset, and a short snippet of the input, so
// callers can point users at the exact problem. Use [AsError] to
// recover the typed value from an error chain.
//
// # Thread Safety
//
// Validate is a pure function over its arguments and is safe for
// concurrent use. Options values should not be mutated while shared.
//
// # Example
//
//	err := htmlvalidate.Validate(input, nil)
//	if verr, ok := htmlvalidate.AsError(err); ok {
//		log.Printf("bad HTML (%s): %v", verr.Code, verr)
//	}
package htmlvalidate
