package castmatch

import (
	"regexp"
	"strings"
)

// Title match scoring thresholds. The values are empirically chosen and
// observable: the resolver accepts a candidate immediately at or above
// ShortCircuitScore and rejects everything below AcceptScore.
const (
	ExactMatchScore   = 120.0
	ShortCircuitScore = 105.0
	AcceptScore       = 22.0
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// NormalizeTitle lowercases s, rewrites "&amp;" as "and", strips
// everything except letters, digits and whitespace, and collapses runs of
// whitespace.
func NormalizeTitle(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&amp;", "and")
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ScoreEpisodeTitleMatch scores the similarity between a target episode
// title and a candidate episode title. Both are normalized first; an empty
// side scores 0 and normalized equality scores ExactMatchScore. Otherwise
// the score is 35 for a substring containment either way, plus the token
// overlap ratio scaled to 100.
func ScoreEpisodeTitleMatch(target, candidate string) float64 {
	t := NormalizeTitle(target)
	c := NormalizeTitle(candidate)
	if t == "" || c == "" {
		return 0
	}
	if t == c {
		return ExactMatchScore
	}

	var score float64
	if strings.Contains(t, c) || strings.Contains(c, t) {
		score += 35
	}

	tTokens := tokenSet(t)
	cTokens := tokenSet(c)
	if len(tTokens) == 0 || len(cTokens) == 0 {
		return score
	}

	overlap := 0
	for tok := range tTokens {
		if cTokens[tok] {
			overlap++
		}
	}
	score += float64(overlap) / float64(max(len(tTokens), len(cTokens))) * 100
	return score
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
