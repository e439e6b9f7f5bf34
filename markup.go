package castmatch

import "strings"

// Attrs holds the attributes of a single markup element, keyed by
// lowercase attribute name.
type Attrs map[string]string

// Get returns the value of the named attribute, or "".
func (a Attrs) Get(name string) string {
	return a[strings.ToLower(name)]
}

// Markup is the capability surface the page-context extractor needs from a
// markup source. Two front-ends satisfy it — a parsed DOM (goquery/) and a
// streaming scan of raw markup (html/) — and both must expose equivalent
// content identically, so the extraction rules are written once.
type Markup interface {
	// TagAttrs returns the attribute sets of every <name> element in
	// document order.
	TagAttrs(name string) []Attrs

	// FirstTagText returns the text content of the first <name> element,
	// with nested tags stripped. Returns "" when the element is absent.
	FirstTagText(name string) string

	// BodyText returns the page's visible text: script and style content
	// removed, remaining text whitespace-collapsed.
	BodyText() string

	// JSONLD returns the bodies of application/ld+json script blocks in
	// document order.
	JSONLD() []string

	// Raw returns the original markup, used for mining embedded
	// script-JSON fields that no parser exposes.
	Raw() string
}
