package castmatch

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	dashYouTubeSuffix = regexp.MustCompile(`(?i)\s-\s*youtube$`)
	pipeYouTubeSuffix = regexp.MustCompile(`(?i)\s\|\s*youtube$`)
	applePodcastsWord = regexp.MustCompile(`(?i)apple podcasts?`)
)

// ScoreEpisodeTitleCandidate scores a raw title candidate. Longer titles
// win (capped at 180) because scraped episode titles tend to carry more
// signal than page chrome; platform-suffixed titles are penalized.
func ScoreEpisodeTitleCandidate(title string) int {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0
	}

	score := min(utf8.RuneCountInString(title), 180)
	if dashYouTubeSuffix.MatchString(title) {
		score -= 45
	}
	if pipeYouTubeSuffix.MatchString(title) {
		score -= 35
	}
	if applePodcastsWord.MatchString(title) {
		score -= 20
	}
	return score
}

// BestEpisodeTitle picks the preferred episode title from raw candidates.
// Candidates are trimmed, exact duplicates removed keeping the first
// occurrence, and ranked by ScoreEpisodeTitleCandidate; ties keep
// insertion order. Returns "" when no usable candidate exists.
func BestEpisodeTitle(titles []string) string {
	seen := make(map[string]bool)
	candidates := make([]string, 0, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		candidates = append(candidates, t)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return ScoreEpisodeTitleCandidate(candidates[i]) > ScoreEpisodeTitleCandidate(candidates[j])
	})

	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}
