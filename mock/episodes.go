package mock

import "github.com/fwojciec/castmatch"

var _ castmatch.EpisodeLinkParser = (*EpisodeLinkParser)(nil)

// EpisodeLinkParser is a mock implementation of castmatch.EpisodeLinkParser.
type EpisodeLinkParser struct {
	EpisodeLinksFn func(html string) []castmatch.EpisodeLink
}

func (p *EpisodeLinkParser) EpisodeLinks(html string) []castmatch.EpisodeLink {
	return p.EpisodeLinksFn(html)
}
