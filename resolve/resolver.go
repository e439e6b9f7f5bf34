// Package resolve orchestrates episode resolution: direct-link lookup,
// query building, directory search, candidate ranking, and episode-page
// scoring with short-circuit acceptance.
package resolve

import (
	"context"
	"net/http"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/castmatch"
)

const (
	// At most the first 3 queries (by score) are searched.
	maxQueries = 3

	// At most the first 4 results of each search are considered.
	maxResultsPerQuery = 4

	// At most the top 3 ranked podcast candidates have their show pages
	// fetched and scored.
	maxPodcastCandidates = 3

	// Episode-link scoring budgets. A candidate returned alone by some
	// query is high-confidence and earns the larger budget.
	highConfidenceBudget = 180
	defaultBudget        = 50
)

// Resolver matches a PageContext to an Overcast episode. Search and Pages
// are required; Hints and Feeds are optional best-effort enrichments whose
// failures are swallowed.
type Resolver struct {
	Search   castmatch.SearchProvider
	Pages    castmatch.PageFetcher
	Episodes castmatch.EpisodeLinkParser
	Hints    castmatch.HintService
	Feeds    castmatch.FeedProber
}

// podcastCandidate is a distinct show observed across search results.
// queryResultCount tracks the smallest result-set size that produced it:
// a show returned alone by some query is high-confidence.
type podcastCandidate struct {
	directURL        string
	title            string
	query            string
	queryResultCount int
}

type episodeCandidate struct {
	url          string
	title        string
	score        float64
	podcastTitle string
	podcastURL   string
}

// Resolve returns the episode link detected for page, or ENOTFOUND when no
// candidate clears the acceptance floor. targetTitle overrides the
// episode title the scorer matches against; when empty the best extracted
// title candidate is used. An HTTP 429 anywhere aborts the resolution with
// ERATELIMIT, never retried here.
//
// All state is per-call; a Resolver is safe for concurrent use.
func (r *Resolver) Resolve(ctx context.Context, page *castmatch.PageContext, targetTitle string) (*castmatch.Resolution, error) {
	if page == nil {
		return nil, castmatch.Errorf(castmatch.EINVALID, "page context required")
	}

	page = r.prime(ctx, page)

	if len(page.OvercastLinks) > 0 {
		top := page.OvercastLinks[0]
		return &castmatch.Resolution{URL: top.URL, Source: "direct-" + string(top.Source)}, nil
	}

	if targetTitle == "" {
		targetTitle = castmatch.BestEpisodeTitle(page.EpisodeTitles)
	}

	queries := castmatch.BuildQueries(page)
	if len(queries) == 0 {
		return nil, noMatch()
	}

	podcasts, err := r.collectPodcasts(ctx, queries)
	if err != nil {
		return nil, err
	}

	return r.scoreEpisodes(ctx, rankPodcasts(podcasts), targetTitle)
}

// prime lets the optional collaborators seed the candidate lists before
// any heuristic runs. The hint service is applied last so its values end
// up with the highest priority.
func (r *Resolver) prime(ctx context.Context, page *castmatch.PageContext) *castmatch.PageContext {
	if r.Feeds != nil && len(page.FeedURLs) > 0 {
		if title, err := r.Feeds.ProbeTitle(ctx, page.FeedURLs[0]); err == nil && title != "" {
			page = page.WithHint(title, "")
		}
	}
	if r.Hints != nil {
		if hint, err := r.Hints.Infer(ctx, page); err == nil && hint != nil {
			page = page.WithHint(hint.PodcastName, hint.EpisodeTitle)
		}
	}
	return page
}

// collectPodcasts searches the top queries and folds the results into
// distinct podcast candidates. Searches may run concurrently but results
// are aggregated in query order, so the candidate set and its insertion
// order never depend on scheduling.
func (r *Resolver) collectPodcasts(ctx context.Context, queries []castmatch.SearchQuery) ([]*podcastCandidate, error) {
	n := min(maxQueries, len(queries))
	resultsByQuery := make([][]castmatch.SearchResult, n)

	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			results, err := r.Search.Search(gctx, queries[i].Text)
			if err != nil {
				if castmatch.ErrorCode(err) == castmatch.ERATELIMIT {
					return err
				}
				// Transport failures skip the query, not the resolution.
				return nil
			}
			resultsByQuery[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var podcasts []*podcastCandidate
	for i := range n {
		results := resultsByQuery[i]
		count := len(results)
		kept := results[:min(maxResultsPerQuery, count)]
		for _, res := range kept {
			key := res.ID + "-" + res.Hash
			if j, seen := index[key]; seen {
				// A more selective query is a stronger observation.
				if count < podcasts[j].queryResultCount {
					podcasts[j].queryResultCount = count
					podcasts[j].query = queries[i].Text
				}
				continue
			}

			title := res.Title
			if title == "" {
				title = "search"
			}
			index[key] = len(podcasts)
			podcasts = append(podcasts, &podcastCandidate{
				directURL:        "https://overcast.fm/p" + key,
				title:            title,
				query:            queries[i].Text,
				queryResultCount: count,
			})
		}
	}
	return podcasts, nil
}

// rankPodcasts orders candidates by ambiguity: fewer competing results
// means higher confidence. Ties break on case-sensitive title order, then
// insertion order. Only the top candidates are kept.
func rankPodcasts(podcasts []*podcastCandidate) []*podcastCandidate {
	sort.SliceStable(podcasts, func(i, j int) bool {
		if podcasts[i].queryResultCount != podcasts[j].queryResultCount {
			return podcasts[i].queryResultCount < podcasts[j].queryResultCount
		}
		return podcasts[i].title < podcasts[j].title
	})
	if len(podcasts) > maxPodcastCandidates {
		podcasts = podcasts[:maxPodcastCandidates]
	}
	return podcasts
}

func (r *Resolver) scoreEpisodes(ctx context.Context, podcasts []*podcastCandidate, targetTitle string) (*castmatch.Resolution, error) {
	var scored []episodeCandidate
	for _, pod := range podcasts {
		resp, err := r.Pages.Get(ctx, pod.directURL)
		if err != nil {
			if castmatch.ErrorCode(err) == castmatch.ERATELIMIT {
				return nil, err
			}
			continue
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, castmatch.Errorf(castmatch.ERATELIMIT, "overcast rate-limited the show page fetch")
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			continue
		}

		links := r.Episodes.EpisodeLinks(resp.Body)
		budget := defaultBudget
		if pod.queryResultCount == 1 {
			budget = highConfidenceBudget
		}
		if len(links) > budget {
			links = links[:budget]
		}

		for _, link := range links {
			score := castmatch.ScoreEpisodeTitleMatch(targetTitle, link.Title)
			if score >= castmatch.ShortCircuitScore {
				return &castmatch.Resolution{URL: link.URL, Source: "search:" + pod.title}, nil
			}
			if score > 0 {
				scored = append(scored, episodeCandidate{
					url:          link.URL,
					title:        link.Title,
					score:        score,
					podcastTitle: pod.title,
					podcastURL:   pod.directURL,
				})
			}
		}
	}

	if len(scored) == 0 {
		return nil, noMatch()
	}

	best := scored[0]
	for _, c := range scored[1:] {
		if c.score > best.score {
			best = c
		}
	}
	if best.score < castmatch.AcceptScore {
		return nil, noMatch()
	}
	return &castmatch.Resolution{URL: best.url, Source: "search:" + best.podcastTitle}, nil
}

func noMatch() error {
	return castmatch.Errorf(castmatch.ENOTFOUND, "couldn't find a matching episode for this page")
}
