package extract_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/castmatch"
	"github.com/fwojciec/castmatch/extract"
	"github.com/fwojciec/castmatch/goquery"
	"github.com/fwojciec/castmatch/html"
)

const episodePageFixture = `<!DOCTYPE html>
<html>
<head>
<title>Turning Sunlight into Gas - Hardware to Save a Planet</title>
<meta property="og:title" content="Turning Sunlight into Gas">
<meta property="og:site_name" content="Hardware to Save a Planet">
<meta name="twitter:player:stream" content="https://cdn.example.com/stream/ep42.mp3">
<meta property="og:description" content="Listen at https://overcast.fm/+metalink">
<link itemprop="name" content="Hardware to Save a Planet">
<meta itemprop="author" content="Synapse">
<script type="application/ld+json">
{"@context":"https://schema.org","@graph":[{"@type":"PodcastEpisode","name":"Turning Sunlight into Gas","partOfSeries":{"@type":"PodcastSeries","name":"Hardware to Save a Planet"}}]}
</script>
<script type="application/ld+json">
{"@type":"Episode","name":"malformed
</script>
</head>
<body>
<h1>Turning Sunlight into Gas</h1>
<a href="https://overcast.fm/+anchorlink#t=15">Overcast</a>
<a href="https://podcasts.apple.com/us/podcast/hardware-to-save-a-planet/id1619685775">Apple Podcasts</a>
<a href="/feed.xml">RSS</a>
<audio src="/audio/ep42.mp3"></audio>
<p>Direct: https://overcast.fm/+textlink</p>
<script>var player = {"ownerChannelName":"Hardware to Save a Planet","shortDescription":"Turning Sunlight into Gas\n\nTune in to Hardware to Save a Planet.","appleLinks":["https:\/\/podcasts.apple.com\/us\/podcast\/id98765432"]};</script>
</body>
</html>`

func domMarkup(t *testing.T, raw string) castmatch.Markup {
	t.Helper()
	m, err := goquery.NewMarkup(raw)
	require.NoError(t, err)
	return m
}

func TestPageContext(t *testing.T) {
	t.Parallel()

	t.Run("extracts every hint from a full episode page", func(t *testing.T) {
		t.Parallel()

		page := extract.PageContext("https://example.com/episodes/ep42", domMarkup(t, episodePageFixture))

		assert.Equal(t, "https://example.com/episodes/ep42", page.PageURL)
		assert.Equal(t, []string{
			"Turning Sunlight into Gas",
			"Turning Sunlight into Gas - Hardware to Save a Planet",
		}, page.EpisodeTitles)
		assert.Equal(t, []string{"Hardware to Save a Planet", "Synapse"}, page.PodcastTitles)
		assert.Equal(t, []string{
			"https://example.com/audio/ep42.mp3",
			"https://cdn.example.com/stream/ep42.mp3",
		}, page.AudioURLs)
		assert.Equal(t, []string{"https://example.com/feed.xml"}, page.FeedURLs)
		assert.Equal(t, []string{"1619685775", "98765432"}, page.ApplePodcastIDs)

		require.Len(t, page.OvercastLinks, 3)
		assert.Equal(t, castmatch.LinkCandidate{URL: "https://overcast.fm/+anchorlink", Source: castmatch.SourceAnchor, Weight: 90}, page.OvercastLinks[0])
		assert.Equal(t, castmatch.LinkCandidate{URL: "https://overcast.fm/+metalink", Source: castmatch.SourceMeta, Weight: 70}, page.OvercastLinks[1])
		assert.Equal(t, castmatch.LinkCandidate{URL: "https://overcast.fm/+textlink", Source: castmatch.SourceText, Weight: 40}, page.OvercastLinks[2])
	})

	t.Run("page URL itself is the strongest candidate", func(t *testing.T) {
		t.Parallel()

		page := extract.PageContext("https://overcast.fm/+current#t=0", domMarkup(t, "<html><body></body></html>"))

		require.Len(t, page.OvercastLinks, 1)
		assert.Equal(t, "https://overcast.fm/+current", page.OvercastLinks[0].URL)
		assert.Equal(t, castmatch.SourceCurrentURL, page.OvercastLinks[0].Source)
		assert.Equal(t, 100, page.OvercastLinks[0].Weight)
	})

	t.Run("duplicate link keeps the heavier source", func(t *testing.T) {
		t.Parallel()

		raw := `<html><body>
			<a href="https://overcast.fm/+same">listen</a>
			<p>also at https://overcast.fm/+same#t=10</p>
		</body></html>`

		page := extract.PageContext("https://example.com/", domMarkup(t, raw))

		require.Len(t, page.OvercastLinks, 1)
		assert.Equal(t, castmatch.SourceAnchor, page.OvercastLinks[0].Source)
	})

	t.Run("caps text links at eight", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("<html><body><p>")
		for i := 0; i < 10; i++ {
			fmt.Fprintf(&sb, "https://overcast.fm/+t%d ", i)
		}
		sb.WriteString("</p></body></html>")

		page := extract.PageContext("https://example.com/", domMarkup(t, sb.String()))

		require.Len(t, page.OvercastLinks, 8)
		assert.Equal(t, "https://overcast.fm/+t0", page.OvercastLinks[0].URL)
		assert.Equal(t, "https://overcast.fm/+t7", page.OvercastLinks[7].URL)
	})

	t.Run("caps escaped Apple URLs at twelve", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("<html><body><script>[")
		for i := 0; i < 15; i++ {
			fmt.Fprintf(&sb, `"https:\/\/podcasts.apple.com\/podcast\/id%d",`, 10000+i)
		}
		sb.WriteString("]</script></body></html>")

		page := extract.PageContext("https://example.com/", domMarkup(t, sb.String()))

		require.Len(t, page.ApplePodcastIDs, 12)
		assert.Equal(t, "10000", page.ApplePodcastIDs[0])
		assert.Equal(t, "10011", page.ApplePodcastIDs[11])
	})

	t.Run("itunes anchors also contribute Apple IDs", func(t *testing.T) {
		t.Parallel()

		raw := `<html><body><a href="https://itunes.apple.com/podcast/id123456">Apple</a></body></html>`

		page := extract.PageContext("https://example.com/", domMarkup(t, raw))
		assert.Equal(t, []string{"123456"}, page.ApplePodcastIDs)
	})

	t.Run("Apple anchors with short IDs are ignored", func(t *testing.T) {
		t.Parallel()

		raw := `<html><body><a href="https://podcasts.apple.com/podcast/id1234">Apple</a></body></html>`

		page := extract.PageContext("https://example.com/", domMarkup(t, raw))
		assert.Empty(t, page.ApplePodcastIDs)
	})

	t.Run("relative hrefs without a usable base are dropped", func(t *testing.T) {
		t.Parallel()

		raw := `<html><body><a href="/feed.xml">RSS</a></body></html>`

		page := extract.PageContext("", domMarkup(t, raw))
		assert.Empty(t, page.FeedURLs)
	})

	t.Run("JSON-LD top-level object without a graph", func(t *testing.T) {
		t.Parallel()

		raw := `<html><head><script type="application/ld+json">
			{"@type":["PodcastEpisode","CreativeWork"],"headline":"Headline Title","partOfSeries":{"name":"Series Name"}}
		</script></head><body></body></html>`

		page := extract.PageContext("https://example.com/", domMarkup(t, raw))
		assert.Equal(t, []string{"Headline Title"}, page.EpisodeTitles)
		assert.Equal(t, []string{"Series Name"}, page.PodcastTitles)
	})

	t.Run("malformed JSON-LD blocks are skipped without affecting others", func(t *testing.T) {
		t.Parallel()

		raw := `<html><head>
			<script type="application/ld+json">{"@type":"Episode","name":"broken</script>
			<script type="application/ld+json">{"@type":"PodcastSeries","name":"Good Series"}</script>
		</head><body></body></html>`

		page := extract.PageContext("https://example.com/", domMarkup(t, raw))
		assert.Equal(t, []string{"Good Series"}, page.PodcastTitles)
		assert.Empty(t, page.EpisodeTitles)
	})

	t.Run("empty page yields an empty context", func(t *testing.T) {
		t.Parallel()

		page := extract.PageContext("https://example.com/", domMarkup(t, "<html><body></body></html>"))

		assert.Empty(t, page.EpisodeTitles)
		assert.Empty(t, page.PodcastTitles)
		assert.Empty(t, page.AudioURLs)
		assert.Empty(t, page.FeedURLs)
		assert.Empty(t, page.ApplePodcastIDs)
		assert.Empty(t, page.OvercastLinks)
	})
}

// The DOM and streaming front-ends must produce structurally identical
// contexts for the same markup.
func TestPageContext_FrontEndEquivalence(t *testing.T) {
	t.Parallel()

	fixtures := map[string]string{
		"full episode page": episodePageFixture,
		"empty page":        "<html><head></head><body></body></html>",
		"links only": `<html><body>
			<a href="https://overcast.fm/+one">a</a>
			<p>https://overcast.fm/+two</p>
		</body></html>`,
	}

	for name, raw := range fixtures {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fromDOM := extract.PageContext("https://example.com/page", domMarkup(t, raw))
			fromStream := extract.PageContext("https://example.com/page", html.NewMarkup(raw))

			require.Equal(t, fromDOM, fromStream)
		})
	}
}
