package castmatch

import (
	"regexp"
	"strconv"
	"strings"
)

// The entity table is deliberately small: these six cover everything the
// extraction rules encounter in title and content attributes, and keeping
// the set fixed makes decoding behavior a stable contract. Replacements run
// sequentially, so "&amp;lt;" degrades to "<" the same way the rest of the
// pipeline expects.
var htmlEntities = [][2]string{
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&nbsp;", " "},
}

// DecodeHTMLEntities replaces the common HTML entities with their literal
// characters. It is total: any input yields a result, empty input yields "".
func DecodeHTMLEntities(s string) string {
	for _, e := range htmlEntities {
		s = strings.ReplaceAll(s, e[0], e[1])
	}
	return s
}

var unicodeEscapePattern = regexp.MustCompile(`\\u([0-9a-fA-F]{4})`)

// DecodeBackslashEscapes decodes strings pulled out of embedded page-script
// JSON without a full JSON parse: \uXXXX escapes first, then \n, \r, \/
// and \". It is total and never fails.
func DecodeBackslashEscapes(s string) string {
	if s == "" {
		return ""
	}
	s = unicodeEscapePattern.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.ParseUint(m[2:], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "")
	s = strings.ReplaceAll(s, `\/`, "/")
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s
}
