package castmatch

import (
	"net/url"
	"regexp"
)

// Overcast exposes one canonical URL per episode, the "plus link":
// https://overcast.fm/+<token>, optionally carrying a fragment.
var (
	episodeURLPattern      = regexp.MustCompile(`(?i)https?://overcast\.fm/\+[A-Za-z0-9_-]+(?:#[^\s"'<>]*)?`)
	episodeURLExactPattern = regexp.MustCompile(`(?i)^https?://overcast\.fm/\+[A-Za-z0-9_-]+(?:#[^\s"'<>]*)?$`)
	episodePathPattern     = regexp.MustCompile(`^/\+[A-Za-z0-9_-]+(?:#.*)?$`)
)

// IsEpisodeURL reports whether s is exactly an Overcast plus link.
func IsEpisodeURL(s string) bool {
	return episodeURLExactPattern.MatchString(s)
}

// IsEpisodePath reports whether s is a relative plus-link path as found in
// hrefs on Overcast's own show pages (e.g. "/+abc123").
func IsEpisodePath(s string) bool {
	return episodePathPattern.MatchString(s)
}

// FindEpisodeURLs returns every plus link embedded in s, in order of
// appearance.
func FindEpisodeURLs(s string) []string {
	return episodeURLPattern.FindAllString(s, -1)
}

// NormalizeEpisodeURL strips the fragment from a plus link. It reports
// false if the URL cannot be parsed.
func NormalizeEpisodeURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	u.Fragment = ""
	return u.String(), true
}
